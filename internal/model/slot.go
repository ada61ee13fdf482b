package model

import "github.com/google/uuid"

// TimeSlot is an ephemeral candidate appointment start time. It is
// recomputed on every availability query and never persisted. BookingID
// names the booking that caused unavailability, when there is one.
type TimeSlot struct {
	Time      TimeOfDay  `json:"time"`
	Available bool       `json:"available"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
}
