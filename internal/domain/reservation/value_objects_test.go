//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"reservation-service/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		want  time.Time
		errIs error
	}{
		{name: "calendar date", raw: "2025-03-14", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", raw: " 2025-03-14 ", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "RFC 3339 keeps its own calendar day", raw: "2025-03-14T23:30:00-05:00", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "day first", raw: "14/03/2025", errIs: reservation.ErrInvalidDate},
		{name: "impossible day", raw: "2025-02-30", errIs: reservation.ErrInvalidDate},
		{name: "empty", raw: "", errIs: reservation.ErrInvalidDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reservation.ParseDate(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestSchedule(t *testing.T) {
	date := time.Date(2025, 3, 4, 18, 45, 0, 0, time.FixedZone("X", 3600))

	s, err := reservation.NewSchedule(date, " 19:30 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04", s.DateISO())
	assert.Equal(t, "3/4/2025", s.DisplayDate())
	assert.Equal(t, "19:30", s.Time())

	_, err = reservation.NewSchedule(date, "  ")
	assert.ErrorIs(t, err, reservation.ErrEmptyTime)

	_, err = reservation.NewSchedule(time.Time{}, "19:30")
	assert.ErrorIs(t, err, reservation.ErrInvalidDate)
}

func TestNewGuestCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := reservation.NewGuestCount(n)
		assert.ErrorIs(t, err, reservation.ErrInvalidGuestCount)
	}
	g, err := reservation.NewGuestCount(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Int())

	top, err := reservation.NewGuestCount(reservation.MaxGuestCount)
	require.NoError(t, err)
	assert.Equal(t, reservation.MaxGuestCount, top.Int())

	_, err = reservation.NewGuestCount(reservation.MaxGuestCount + 1)
	assert.ErrorIs(t, err, reservation.ErrGuestCountTooLarge)
}

func TestNewContact(t *testing.T) {
	testCases := []struct {
		name  string
		guest string
		email string
		errIs error
	}{
		{name: "valid", guest: "Jane Doe", email: "jane@example.com"},
		{name: "blank name", guest: "   ", email: "jane@example.com", errIs: reservation.ErrEmptyGuestName},
		{name: "missing at sign", guest: "Jane", email: "jane.example.com", errIs: reservation.ErrInvalidEmail},
		{name: "display name form", guest: "Jane", email: "Jane <jane@example.com>", errIs: reservation.ErrInvalidEmail},
		{name: "empty email", guest: "Jane", email: "", errIs: reservation.ErrInvalidEmail},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := reservation.NewContact(tc.guest, tc.email)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.guest, c.Name())
			assert.Equal(t, tc.email, c.Email())
		})
	}
}

func TestNewSpecialRequests(t *testing.T) {
	empty, err := reservation.NewSpecialRequests("  ")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	atLimit, err := reservation.NewSpecialRequests(strings.Repeat("a", reservation.MaxSpecialRequestsSize))
	require.NoError(t, err)
	assert.False(t, atLimit.IsEmpty())

	_, err = reservation.NewSpecialRequests(strings.Repeat("a", reservation.MaxSpecialRequestsSize+1))
	assert.ErrorIs(t, err, reservation.ErrSpecialRequestsLimit)

	t.Run("limit counts characters not bytes", func(t *testing.T) {
		accented, err := reservation.NewSpecialRequests(strings.Repeat("é", reservation.MaxSpecialRequestsSize))
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("é", reservation.MaxSpecialRequestsSize), accented.String())

		_, err = reservation.NewSpecialRequests(strings.Repeat("é", reservation.MaxSpecialRequestsSize+1))
		assert.ErrorIs(t, err, reservation.ErrSpecialRequestsLimit)
	})
}
