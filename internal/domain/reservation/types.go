package reservation

import (
	"errors"
	"strings"
)

var (
	ErrEmptyStatus       = errors.New("status cannot be empty")
	ErrUnknownStatus     = errors.New("unknown reservation status")
	ErrTransitionDenied  = errors.New("reservation status transition not allowed")
	ErrUnknownPolicyName = errors.New("unknown status policy")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusSeated    Status = "seated"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

// IsKnown reports whether s belongs to the closed set used by the strict policy.
func (s Status) IsKnown() bool {
	_, ok := transitions[s]
	return ok
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusSeated, StatusCancelled, StatusNoShow},
	StatusSeated:    {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusPolicy decides which status values an updater may write.
// PolicyCompat accepts any non-empty value and any transition.
type StatusPolicy string

const (
	PolicyCompat StatusPolicy = "compat"
	PolicyStrict StatusPolicy = "strict"
)

func NewStatusPolicy(name string) (StatusPolicy, error) {
	switch p := StatusPolicy(strings.ToLower(strings.TrimSpace(name))); p {
	case PolicyCompat, PolicyStrict:
		return p, nil
	case "":
		return PolicyCompat, nil
	default:
		return "", ErrUnknownPolicyName
	}
}

func (p StatusPolicy) ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if s == "" {
		return "", ErrEmptyStatus
	}
	if p == PolicyStrict && !s.IsKnown() {
		return "", ErrUnknownStatus
	}
	return s, nil
}

func (p StatusPolicy) CheckTransition(from, to Status) error {
	if p != PolicyStrict {
		return nil
	}
	if !from.IsKnown() || !from.CanTransitionTo(to) {
		return ErrTransitionDenied
	}
	return nil
}
