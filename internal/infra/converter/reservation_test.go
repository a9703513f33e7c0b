//go:build unit

package converter_test

import (
	"testing"
	"time"

	"reservation-service/internal/infra/converter"
	"reservation-service/internal/infra/queries"
	"reservation-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationToCreateParams(t *testing.T) {
	t.Run("maps every column", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		params := converter.ReservationToCreateParams(b.BuildNew())

		assert.Equal(t, b.RestaurantID, params.RestaurantID)
		assert.Equal(t, "Trattoria Roma", params.RestaurantName)
		assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), params.ReservationDate.Time)
		assert.True(t, params.ReservationDate.Valid)
		assert.Equal(t, "19:30", params.ReservationTime)
		assert.Equal(t, int32(4), params.NumberOfGuests)
		assert.Equal(t, pgtype.Text{String: "Window seat", Valid: true}, params.SpecialRequests)
		assert.Equal(t, "pending", params.Status)
	})

	t.Run("empty special requests become NULL", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.SpecialRequests = "" })
		params := converter.ReservationToCreateParams(b.BuildNew())

		assert.False(t, params.SpecialRequests.Valid)
	})
}

func TestReservationFromRow(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	row := queries.Reservations{
		ID:              uuid.New(),
		RestaurantID:    uuid.New(),
		RestaurantName:  "Sakura",
		ReservationDate: pgtype.Date{Time: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), Valid: true},
		ReservationTime: "20:00",
		NumberOfGuests:  2,
		GuestName:       "Ken",
		GuestEmail:      "ken@example.com",
		Status:          "confirmed",
		CreatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
	}

	t.Run("rebuilds the aggregate", func(t *testing.T) {
		res, err := converter.ReservationFromRow(row)

		require.NoError(t, err)
		assert.Equal(t, row.ID, res.ID())
		assert.Equal(t, "2025-12-31", res.Schedule().DateISO())
		assert.Equal(t, "12/31/2025", res.Schedule().DisplayDate())
		assert.True(t, res.SpecialRequests().IsEmpty())
		assert.Equal(t, "confirmed", res.Status().String())
		assert.Equal(t, now, res.CreatedAt())
	})

	t.Run("corrupt row is an error", func(t *testing.T) {
		bad := row
		bad.NumberOfGuests = 0

		_, err := converter.ReservationFromRow(bad)

		assert.Error(t, err)
	})
}

func TestJoinedRestaurant(t *testing.T) {
	t.Run("missing restaurant is nil", func(t *testing.T) {
		assert.Nil(t, converter.JoinedRestaurant(queries.ListReservationsWithRestaurantRow{}))
	})

	t.Run("present restaurant carries id and name", func(t *testing.T) {
		id := uuid.New()
		row := queries.ListReservationsWithRestaurantRow{
			JoinedRestaurantID:   pgtype.UUID{Bytes: id, Valid: true},
			JoinedRestaurantName: pgtype.Text{String: "Sakura", Valid: true},
		}

		got := converter.JoinedRestaurant(row)

		require.NotNil(t, got)
		assert.Equal(t, id, got.ID())
		assert.Equal(t, "Sakura", got.Name())
	})
}
