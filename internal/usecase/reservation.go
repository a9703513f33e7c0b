package usecase

import (
	"context"
	"log/slog"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/domain/restaurant"
	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	RestaurantID    string
	Date            string
	Time            string
	NumberOfGuests  int
	SpecialRequests string
	Name            string
	Email           string
}

//go:generate mockgen -source=reservation.go -destination=../../tests/mock/usecase/reservation.go -package=usecasemock

type ReservationManager interface {
	// Create persists a pending reservation and sends the confirmation email.
	// When only the email fails, the persisted reservation is returned together
	// with an error marked ErrNotificationFailed.
	Create(ctx context.Context, input CreateReservationInput) (*reservation.Reservation, error)
	List(ctx context.Context) ([]*ReservationListItem, error)
	UpdateStatus(ctx context.Context, id string, status string) (*reservation.Reservation, error)
	// Cancel deletes the reservation and returns its last known state.
	Cancel(ctx context.Context, id string) (*reservation.Reservation, error)
}

type reservationManagerImpl struct {
	store       ReservationStore
	restaurants RestaurantLookup
	notifier    Notifier
	policy      reservation.StatusPolicy
	logger      *slog.Logger
}

func NewReservationManager(
	store ReservationStore,
	restaurants RestaurantLookup,
	notifier Notifier,
	policy reservation.StatusPolicy,
	logger *slog.Logger,
) ReservationManager {
	return &reservationManagerImpl{
		store:       store,
		restaurants: restaurants,
		notifier:    notifier,
		policy:      policy,
		logger:      logger,
	}
}

func (m *reservationManagerImpl) Create(ctx context.Context, input CreateReservationInput) (*reservation.Reservation, error) {
	rest, err := m.findRestaurant(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	entity, err := buildReservation(rest, input)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	created, err := m.store.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create reservation")
	}
	m.logger.Info("Reservation created",
		slog.String("reservation_id", created.ID().String()),
		slog.String("restaurant_id", created.RestaurantID().String()))

	return created, m.notify(ctx, EventConfirmation, created)
}

func (m *reservationManagerImpl) List(ctx context.Context) ([]*ReservationListItem, error) {
	items, err := m.store.ListWithRestaurant(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return items, nil
}

func (m *reservationManagerImpl) UpdateStatus(ctx context.Context, id string, status string) (*reservation.Reservation, error) {
	reservationID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	next, err := m.policy.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	current, err := m.store.FindByID(ctx, reservationID)
	if err != nil {
		return nil, m.translateStoreErr(err, "failed to find reservation")
	}

	if err := current.ChangeStatus(next, m.policy); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "%s -> %s", current.Status(), next), ErrInvalidStatusTransition)
	}

	updated, err := m.store.UpdateStatus(ctx, reservationID, next)
	if err != nil {
		return nil, m.translateStoreErr(err, "failed to update reservation status")
	}
	m.logger.Info("Reservation status updated",
		slog.String("reservation_id", updated.ID().String()),
		slog.String("status", updated.Status().String()))

	return updated, m.notify(ctx, EventStatusUpdate, updated)
}

func (m *reservationManagerImpl) Cancel(ctx context.Context, id string) (*reservation.Reservation, error) {
	reservationID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	deleted, err := m.store.DeleteReturning(ctx, reservationID)
	if err != nil {
		return nil, m.translateStoreErr(err, "failed to cancel reservation")
	}
	m.logger.Info("Reservation cancelled", slog.String("reservation_id", deleted.ID().String()))

	return deleted, m.notify(ctx, EventCancellation, deleted)
}

func (m *reservationManagerImpl) findRestaurant(ctx context.Context, rawID string) (*restaurant.Restaurant, error) {
	restaurantID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrRestaurantNotFound
	}

	rest, err := m.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, errs.Wrap(err, "failed to find restaurant")
	}
	return rest, nil
}

func (m *reservationManagerImpl) translateStoreErr(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrReservationNotFound
	}
	return errs.Wrap(err, msg)
}

// notify never undoes the store write; a failed send is logged and reported as
// ErrNotificationFailed alongside the persisted record.
func (m *reservationManagerImpl) notify(ctx context.Context, event NotificationEvent, res *reservation.Reservation) error {
	n := newNotification(event, res)
	if err := m.notifier.Send(ctx, n); err != nil {
		m.logger.Error("Failed to send reservation email",
			slog.String("reservation_id", res.ID().String()),
			slog.String("event", string(event)),
			slog.String("to", n.To),
			slog.Any("error", err))
		return errs.Mark(errs.Wrap(err, "failed to send "+string(event)+" email"), ErrNotificationFailed)
	}
	return nil
}

func buildReservation(rest *restaurant.Restaurant, input CreateReservationInput) (*reservation.Reservation, error) {
	date, err := reservation.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}
	schedule, err := reservation.NewSchedule(date, input.Time)
	if err != nil {
		return nil, err
	}
	guests, err := reservation.NewGuestCount(input.NumberOfGuests)
	if err != nil {
		return nil, err
	}
	requests, err := reservation.NewSpecialRequests(input.SpecialRequests)
	if err != nil {
		return nil, err
	}
	contact, err := reservation.NewContact(input.Name, input.Email)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(rest, schedule, guests, requests, contact), nil
}
