package booking

import (
	"context"

	domain "github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
	"github.com/BruksfildServices01/spa-scheduler/internal/notify"
	"github.com/BruksfildServices01/spa-scheduler/internal/store"
	"github.com/BruksfildServices01/spa-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SubmitBookingInput struct {
	ServiceID string
	SlotID    string
	Name      string
	Email     string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitBooking struct {
	catalog domain.Catalog
	store   store.Store
	notify  *notify.Dispatcher
}

func NewSubmitBooking(
	catalog domain.Catalog,
	st store.Store,
	dispatcher *notify.Dispatcher,
) *SubmitBooking {
	return &SubmitBooking{
		catalog: catalog,
		store:   st,
		notify:  dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking transaction: validate, resolve the slot,
// atomically claim it, then hand the confirmation to the notifier.
// A slot claim is terminal; there is no cancellation path.
func (uc *SubmitBooking) Execute(
	ctx context.Context,
	in SubmitBookingInput,
) (*models.BookingRecord, error) {

	// --------------------------------------------------
	// Validation (before touching the store)
	// --------------------------------------------------
	if in.ServiceID == "" {
		return nil, httperr.ErrBusiness("missing_service")
	}

	if fields := validateSubmission(in); len(fields) > 0 {
		return nil, httperr.ValidationError{Fields: fields}
	}

	// --------------------------------------------------
	// Resolution
	// --------------------------------------------------
	svc, ok := uc.catalog.Lookup(in.ServiceID)
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	var slot *models.Timeslot
	for _, s := range uc.catalog.Slots(in.ServiceID) {
		if s.ID == in.SlotID {
			slot = &s
			break
		}
	}
	if slot == nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	// --------------------------------------------------
	// Atomic claim — of two concurrent submissions for the
	// same slot, exactly one passes this point.
	// --------------------------------------------------
	if !slot.Available {
		return nil, httperr.ErrBusiness("slot_conflict")
	}

	claimed, err := uc.store.TryClaim(ctx, in.ServiceID, slot.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, httperr.ErrBusiness("slot_conflict")
	}

	// --------------------------------------------------
	// Confirmation
	// --------------------------------------------------
	record := &models.BookingRecord{
		Name:       validators.SanitizeName(in.Name),
		Email:      validators.SanitizeEmail(in.Email),
		ServiceID:  in.ServiceID,
		Timeslot:   slot.Time,
		TimeslotID: slot.ID,
	}

	uc.notify.Dispatch(notify.Confirmation{
		Name:        record.Name,
		Email:       record.Email,
		ServiceName: svc.Name,
		Timeslot:    slot.Time,
		Duration:    svc.Duration,
	})

	return record, nil
}
