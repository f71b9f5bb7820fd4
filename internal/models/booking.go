package models

// BookingRecord is the output of a successful booking transaction. It is
// returned to the caller and handed to the confirmation notifier; no
// booking history is kept beyond that.
type BookingRecord struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	ServiceID  string `json:"serviceId"`
	Timeslot   string `json:"timeslot"`
	TimeslotID string `json:"timeslotId"`
}
