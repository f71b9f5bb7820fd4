// Package catalog holds the static service catalog and per-service slot
// templates. Both are defined at compile time and read-only.
package catalog

import "github.com/BruksfildServices01/spa-scheduler/internal/models"

type Catalog struct {
	services []models.Service
	byID     map[string]*models.Service
	slots    map[string][]models.Timeslot
}

func New() *Catalog {
	c := &Catalog{
		services: services,
		byID:     make(map[string]*models.Service, len(services)),
		slots:    timeslots,
	}
	for i := range c.services {
		c.byID[c.services[i].ID] = &c.services[i]
	}
	return c
}

// Services returns the catalog in declaration order.
func (c *Catalog) Services() []models.Service {
	return c.services
}

func (c *Catalog) Lookup(serviceID string) (*models.Service, bool) {
	svc, ok := c.byID[serviceID]
	return svc, ok
}

// Slots returns the slot template for a service in declaration order
// (chronological). Unknown services return nil.
func (c *Catalog) Slots(serviceID string) []models.Timeslot {
	return c.slots[serviceID]
}
