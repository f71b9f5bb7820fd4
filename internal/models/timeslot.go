package models

// Timeslot is one bookable time unit for a service. As a template entry
// Available is the permanent baseline; as a query result it also folds
// in the booked state.
type Timeslot struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
