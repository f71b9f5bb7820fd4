package booking

import (
	"context"

	domain "github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
	"github.com/BruksfildServices01/spa-scheduler/internal/store"
)

type ListTimeslots struct {
	catalog domain.Catalog
	store   store.Store
}

func NewListTimeslots(catalog domain.Catalog, st store.Store) *ListTimeslots {
	return &ListTimeslots{
		catalog: catalog,
		store:   st,
	}
}

// Execute overlays the booked set onto the service's slot template,
// preserving template order. An unknown service yields an empty list;
// the handler maps that to not-found. Reads are not linearized with
// in-flight claims: a slot may briefly show available right before
// another client's claim commits.
func (uc *ListTimeslots) Execute(
	ctx context.Context,
	serviceID string,
) ([]models.Timeslot, error) {

	template := uc.catalog.Slots(serviceID)
	if len(template) == 0 {
		return []models.Timeslot{}, nil
	}

	slots := make([]models.Timeslot, 0, len(template))
	for _, slot := range template {
		available := slot.Available
		if available {
			booked, err := uc.store.IsBooked(ctx, serviceID, slot.ID)
			if err != nil {
				return nil, err
			}
			available = !booked
		}

		slots = append(slots, models.Timeslot{
			ID:        slot.ID,
			Time:      slot.Time,
			Available: available,
		})
	}

	return slots, nil
}
