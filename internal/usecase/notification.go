package usecase

import (
	"reservation-service/internal/domain/reservation"
)

type NotificationEvent string

const (
	EventConfirmation NotificationEvent = "confirmation"
	EventStatusUpdate NotificationEvent = "status_update"
	EventCancellation NotificationEvent = "cancellation"
)

type Notification struct {
	Event NotificationEvent
	To    string
	Data  NotificationData
}

// NotificationData is the template payload shared by all events. Dates are
// already formatted for display.
type NotificationData struct {
	GuestName       string
	RestaurantName  string
	Date            string
	Time            string
	NumberOfGuests  int
	SpecialRequests string
	Status          string
}

func newNotification(event NotificationEvent, res *reservation.Reservation) Notification {
	return Notification{
		Event: event,
		To:    res.Contact().Email(),
		Data: NotificationData{
			GuestName:       res.Contact().Name(),
			RestaurantName:  res.RestaurantName(),
			Date:            res.Schedule().DisplayDate(),
			Time:            res.Schedule().Time(),
			NumberOfGuests:  res.Guests().Int(),
			SpecialRequests: res.SpecialRequests().String(),
			Status:          res.Status().String(),
		},
	}
}
