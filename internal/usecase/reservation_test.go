//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase"
	"reservation-service/tests/common/builder"
	usecasemock "reservation-service/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type managerDeps struct {
	store       *usecasemock.MockReservationStore
	restaurants *usecasemock.MockRestaurantLookup
	notifier    *usecasemock.MockNotifier
}

func newManager(t *testing.T, policy reservation.StatusPolicy) (usecase.ReservationManager, managerDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := managerDeps{
		store:       usecasemock.NewMockReservationStore(ctrl),
		restaurants: usecasemock.NewMockRestaurantLookup(ctrl),
		notifier:    usecasemock.NewMockNotifier(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewReservationManager(deps.store, deps.restaurants, deps.notifier, policy, logger), deps
}

var (
	errNotFoundRow = infra.RepositoryError{Kind: infra.KindNotFound}
	errDBFailure   = infra.RepositoryError{Kind: infra.KindDBFailure}
)

// =============================================================================
// Create
// =============================================================================

func TestReservationManager_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: persists a pending reservation and sends the confirmation", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()
		persisted := b.BuildDomain()

		deps.restaurants.EXPECT().FindByID(ctx, b.RestaurantID).Return(b.BuildRestaurant(), nil)
		deps.store.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
				assert.Equal(t, uuid.Nil, res.ID())
				assert.Equal(t, reservation.StatusPending, res.Status())
				assert.Equal(t, b.RestaurantName, res.RestaurantName())
				assert.Equal(t, b.RestaurantID, res.RestaurantID())
				assert.Equal(t, "2025-03-14", res.Schedule().DateISO())
				return persisted, nil
			})
		deps.notifier.EXPECT().Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n usecase.Notification) error {
				want := usecase.Notification{
					Event: usecase.EventConfirmation,
					To:    "jane@example.com",
					Data: usecase.NotificationData{
						GuestName:       "Jane Doe",
						RestaurantName:  "Trattoria Roma",
						Date:            "3/14/2025",
						Time:            "19:30",
						NumberOfGuests:  4,
						SpecialRequests: "Window seat",
						Status:          "pending",
					},
				}
				if diff := cmp.Diff(want, n); diff != "" {
					t.Errorf("notification mismatch (-want +got):\n%s", diff)
				}
				return nil
			})

		got, err := m.Create(ctx, b.BuildInput())

		require.NoError(t, err)
		assert.Equal(t, persisted.ID(), got.ID())
	})

	t.Run("error: unknown restaurant persists nothing and sends nothing", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()

		deps.restaurants.EXPECT().FindByID(ctx, b.RestaurantID).Return(nil, errNotFoundRow)
		deps.store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		got, err := m.Create(ctx, b.BuildInput())

		assert.Nil(t, got)
		assert.True(t, errs.Is(err, usecase.ErrRestaurantNotFound))
		assert.True(t, errs.Is(err, usecase.ErrNotFound))
	})

	t.Run("error: malformed restaurant id is reported as not found", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		input := builder.NewReservationBuilder().BuildInput()
		input.RestaurantID = "not-a-uuid"

		deps.restaurants.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.Create(ctx, input)

		assert.True(t, errs.Is(err, usecase.ErrRestaurantNotFound))
	})

	t.Run("error: restaurant lookup failure is not a not-found", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()

		deps.restaurants.EXPECT().FindByID(ctx, b.RestaurantID).Return(nil, errDBFailure)

		_, err := m.Create(ctx, b.BuildInput())

		require.Error(t, err)
		assert.False(t, errs.Is(err, usecase.ErrNotFound))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	validation := []struct {
		name   string
		mutate func(*usecase.CreateReservationInput)
		want   error
	}{
		{name: "zero guests", mutate: func(in *usecase.CreateReservationInput) { in.NumberOfGuests = 0 }, want: reservation.ErrInvalidGuestCount},
		{name: "guests beyond column range", mutate: func(in *usecase.CreateReservationInput) { in.NumberOfGuests = reservation.MaxGuestCount + 1 }, want: reservation.ErrGuestCountTooLarge},
		{name: "bad date", mutate: func(in *usecase.CreateReservationInput) { in.Date = "14/03/2025" }, want: reservation.ErrInvalidDate},
		{name: "empty time", mutate: func(in *usecase.CreateReservationInput) { in.Time = " " }, want: reservation.ErrEmptyTime},
		{name: "empty name", mutate: func(in *usecase.CreateReservationInput) { in.Name = "" }, want: reservation.ErrEmptyGuestName},
		{name: "bad email", mutate: func(in *usecase.CreateReservationInput) { in.Email = "jane@" }, want: reservation.ErrInvalidEmail},
	}
	for _, tc := range validation {
		t.Run("error: validation "+tc.name, func(t *testing.T) {
			m, deps := newManager(t, reservation.PolicyCompat)
			b := builder.NewReservationBuilder()
			input := b.BuildInput()
			tc.mutate(&input)

			deps.restaurants.EXPECT().FindByID(ctx, b.RestaurantID).Return(b.BuildRestaurant(), nil)
			deps.store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

			_, err := m.Create(ctx, input)

			assert.True(t, errs.Is(err, usecase.ErrValidation))
			assert.True(t, errs.Is(err, tc.want))
		})
	}

	t.Run("error: store failure sends no email", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()

		deps.restaurants.EXPECT().FindByID(ctx, b.RestaurantID).Return(b.BuildRestaurant(), nil)
		deps.store.EXPECT().Create(ctx, gomock.Any()).Return(nil, errDBFailure)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		got, err := m.Create(ctx, b.BuildInput())

		assert.Nil(t, got)
		require.Error(t, err)
		assert.False(t, errs.Is(err, usecase.ErrNotificationFailed))
	})

	t.Run("error: failed email keeps the persisted reservation", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()
		persisted := b.BuildDomain()

		deps.restaurants.EXPECT().FindByID(ctx, b.RestaurantID).Return(b.BuildRestaurant(), nil)
		deps.store.EXPECT().Create(ctx, gomock.Any()).Return(persisted, nil)
		deps.notifier.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp: connection refused"))

		got, err := m.Create(ctx, b.BuildInput())

		require.NotNil(t, got)
		assert.Equal(t, persisted.ID(), got.ID())
		assert.True(t, errs.Is(err, usecase.ErrNotificationFailed))
		assert.Contains(t, err.Error(), "connection refused")
	})
}

// =============================================================================
// List
// =============================================================================

func TestReservationManager_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns the store order untouched", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		later := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Date = "2025-04-01" }).BuildListItem()
		orphan := builder.NewReservationBuilder().BuildListItem()
		orphan.Restaurant = nil

		deps.store.EXPECT().ListWithRestaurant(ctx).Return([]*usecase.ReservationListItem{later, orphan}, nil)

		items, err := m.List(ctx)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, later.Reservation.ID(), items[0].Reservation.ID())
		assert.Nil(t, items[1].Restaurant)
	})

	t.Run("success: empty store", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		deps.store.EXPECT().ListWithRestaurant(ctx).Return([]*usecase.ReservationListItem{}, nil)

		items, err := m.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("error: store failure", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		deps.store.EXPECT().ListWithRestaurant(ctx).Return(nil, errDBFailure)

		_, err := m.List(ctx)

		assert.Error(t, err)
	})
}

// =============================================================================
// UpdateStatus
// =============================================================================

func TestReservationManager_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: writes the status and sends the update email", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()
		current := b.BuildDomain()
		updated := builder.NewReservationBuilder().With(func(nb *builder.ReservationBuilder) {
			*nb = *b
			nb.Status = reservation.StatusConfirmed
		}).BuildDomain()

		deps.store.EXPECT().FindByID(ctx, b.ID).Return(current, nil)
		deps.store.EXPECT().UpdateStatus(ctx, b.ID, reservation.StatusConfirmed).Return(updated, nil)
		deps.notifier.EXPECT().Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n usecase.Notification) error {
				assert.Equal(t, usecase.EventStatusUpdate, n.Event)
				assert.Equal(t, "confirmed", n.Data.Status)
				assert.Equal(t, "3/14/2025", n.Data.Date)
				assert.Equal(t, 4, n.Data.NumberOfGuests)
				return nil
			})

		got, err := m.UpdateStatus(ctx, b.ID.String(), "confirmed")

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, got.Status())
	})

	t.Run("success: compat policy stores any non-empty value", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()
		updated := builder.NewReservationBuilder().With(func(nb *builder.ReservationBuilder) {
			*nb = *b
			nb.Status = "arrived-late"
		}).BuildDomain()

		deps.store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildDomain(), nil)
		deps.store.EXPECT().UpdateStatus(ctx, b.ID, reservation.Status("arrived-late")).Return(updated, nil)
		deps.notifier.EXPECT().Send(ctx, gomock.Any()).Return(nil)

		got, err := m.UpdateStatus(ctx, b.ID.String(), "arrived-late")

		require.NoError(t, err)
		assert.Equal(t, "arrived-late", got.Status().String())
	})

	t.Run("error: absent reservation sends nothing", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		id := uuid.New()

		deps.store.EXPECT().FindByID(ctx, id).Return(nil, errNotFoundRow)
		deps.store.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.UpdateStatus(ctx, id.String(), "confirmed")

		assert.True(t, errs.Is(err, usecase.ErrReservationNotFound))
	})

	t.Run("error: malformed id is reported as not found", func(t *testing.T) {
		m, _ := newManager(t, reservation.PolicyCompat)

		_, err := m.UpdateStatus(ctx, "42", "confirmed")

		assert.True(t, errs.Is(err, usecase.ErrReservationNotFound))
	})

	t.Run("error: empty status is a validation error", func(t *testing.T) {
		m, _ := newManager(t, reservation.PolicyCompat)

		_, err := m.UpdateStatus(ctx, uuid.NewString(), "  ")

		assert.True(t, errs.Is(err, usecase.ErrValidation))
	})

	t.Run("error: strict policy rejects unknown values", func(t *testing.T) {
		m, _ := newManager(t, reservation.PolicyStrict)

		_, err := m.UpdateStatus(ctx, uuid.NewString(), "arrived-late")

		assert.True(t, errs.Is(err, usecase.ErrValidation))
	})

	t.Run("error: strict policy rejects a disallowed transition", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyStrict)
		b := builder.NewReservationBuilder().With(func(nb *builder.ReservationBuilder) { nb.Status = reservation.StatusCompleted })

		deps.store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildDomain(), nil)
		deps.store.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.UpdateStatus(ctx, b.ID.String(), "pending")

		assert.True(t, errs.Is(err, usecase.ErrInvalidStatusTransition))
	})

	t.Run("error: row deleted between read and write", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()

		deps.store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildDomain(), nil)
		deps.store.EXPECT().UpdateStatus(ctx, b.ID, reservation.StatusConfirmed).Return(nil, errNotFoundRow)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.UpdateStatus(ctx, b.ID.String(), "confirmed")

		assert.True(t, errs.Is(err, usecase.ErrReservationNotFound))
	})

	t.Run("error: failed email keeps the new status", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()

		deps.store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildDomain(), nil)
		deps.store.EXPECT().UpdateStatus(ctx, b.ID, reservation.StatusConfirmed).Return(b.BuildDomain(), nil)
		deps.notifier.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("timeout"))

		got, err := m.UpdateStatus(ctx, b.ID.String(), "confirmed")

		assert.NotNil(t, got)
		assert.True(t, errs.Is(err, usecase.ErrNotificationFailed))
	})
}

// =============================================================================
// Cancel
// =============================================================================

func TestReservationManager_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: deletes and mails the deleted record's address", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder().With(func(nb *builder.ReservationBuilder) { nb.Email = "guest@example.org" })
		deleted := b.BuildDomain()

		deps.store.EXPECT().DeleteReturning(ctx, b.ID).Return(deleted, nil)
		deps.notifier.EXPECT().Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n usecase.Notification) error {
				assert.Equal(t, usecase.EventCancellation, n.Event)
				assert.Equal(t, "guest@example.org", n.To)
				assert.Equal(t, "Trattoria Roma", n.Data.RestaurantName)
				assert.Equal(t, "19:30", n.Data.Time)
				return nil
			})

		got, err := m.Cancel(ctx, b.ID.String())

		require.NoError(t, err)
		assert.Equal(t, deleted.ID(), got.ID())
	})

	t.Run("error: second cancel of the same id is not found", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()

		gomock.InOrder(
			deps.store.EXPECT().DeleteReturning(ctx, b.ID).Return(b.BuildDomain(), nil),
			deps.store.EXPECT().DeleteReturning(ctx, b.ID).Return(nil, errNotFoundRow),
		)
		deps.notifier.EXPECT().Send(ctx, gomock.Any()).Return(nil).Times(1)

		_, err := m.Cancel(ctx, b.ID.String())
		require.NoError(t, err)

		_, err = m.Cancel(ctx, b.ID.String())
		assert.True(t, errs.Is(err, usecase.ErrReservationNotFound))
	})

	t.Run("error: failed email still returns the deleted record", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		b := builder.NewReservationBuilder()

		deps.store.EXPECT().DeleteReturning(ctx, b.ID).Return(b.BuildDomain(), nil)
		deps.notifier.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("bounce"))

		got, err := m.Cancel(ctx, b.ID.String())

		assert.NotNil(t, got)
		assert.True(t, errs.Is(err, usecase.ErrNotificationFailed))
	})

	t.Run("error: store failure", func(t *testing.T) {
		m, deps := newManager(t, reservation.PolicyCompat)
		id := uuid.New()

		deps.store.EXPECT().DeleteReturning(ctx, id).Return(nil, errDBFailure)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.Cancel(ctx, id.String())

		require.Error(t, err)
		assert.False(t, errs.Is(err, usecase.ErrNotFound))
	})
}
