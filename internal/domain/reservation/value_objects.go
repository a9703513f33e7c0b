package reservation

import (
	"errors"
	"math"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidGuestCount    = errors.New("number of guests must be at least 1")
	ErrGuestCountTooLarge   = errors.New("number of guests is too large")
	ErrInvalidDate          = errors.New("date must be YYYY-MM-DD or RFC 3339")
	ErrEmptyTime            = errors.New("time cannot be empty")
	ErrEmptyGuestName       = errors.New("name cannot be empty")
	ErrInvalidEmail         = errors.New("email is not a valid address")
	ErrSpecialRequestsLimit = errors.New("special requests are too long (max 1000 characters)")
)

const (
	dateLayout             = "2006-01-02"
	displayDateLayout      = "1/2/2006"
	MaxSpecialRequestsSize = 1000
	// MaxGuestCount is the INTEGER column limit.
	MaxGuestCount = math.MaxInt32
)

// Schedule keeps the calendar date and the caller-supplied time of day. The time
// is not parsed or normalized.
type Schedule struct {
	date      time.Time
	timeOfDay string
}

// ParseDate accepts a plain calendar date or an RFC 3339 timestamp; only the
// calendar date in the timestamp's own offset is kept.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func NewSchedule(date time.Time, timeOfDay string) (Schedule, error) {
	if date.IsZero() {
		return Schedule{}, ErrInvalidDate
	}
	timeOfDay = strings.TrimSpace(timeOfDay)
	if timeOfDay == "" {
		return Schedule{}, ErrEmptyTime
	}
	y, m, d := date.Date()
	return Schedule{
		date:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		timeOfDay: timeOfDay,
	}, nil
}

func (s Schedule) Date() time.Time     { return s.date }
func (s Schedule) Time() string        { return s.timeOfDay }
func (s Schedule) DateISO() string     { return s.date.Format(dateLayout) }
func (s Schedule) DisplayDate() string { return s.date.Format(displayDateLayout) }

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < 1 {
		return GuestCount{}, ErrInvalidGuestCount
	}
	if n > MaxGuestCount {
		return GuestCount{}, ErrGuestCountTooLarge
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Int() int { return g.value }

type Contact struct {
	name  string
	email string
}

func NewContact(name, email string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrEmptyGuestName
	}
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Contact{}, ErrInvalidEmail
	}
	return Contact{name: name, email: email}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) (SpecialRequests, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxSpecialRequestsSize {
		return SpecialRequests{}, ErrSpecialRequestsLimit
	}
	return SpecialRequests{value: value}, nil
}

func (s SpecialRequests) String() string {
	return s.value
}

func (s SpecialRequests) IsEmpty() bool {
	return s.value == ""
}
