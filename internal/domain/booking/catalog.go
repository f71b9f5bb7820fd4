package booking

import "github.com/BruksfildServices01/spa-scheduler/internal/models"

// Catalog is the read-only lookup surface the booking flow needs from
// the static service catalog.
type Catalog interface {
	Lookup(serviceID string) (*models.Service, bool)
	Slots(serviceID string) []models.Timeslot
}
