package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/spa-scheduler/internal/catalog"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/notify"
	"github.com/BruksfildServices01/spa-scheduler/internal/store"
)

// fakeNotifier records confirmations and can be told to fail.
type fakeNotifier struct {
	sent chan notify.Confirmation
	err  error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan notify.Confirmation, 10)}
}

func (f *fakeNotifier) Send(_ context.Context, conf notify.Confirmation) error {
	f.sent <- conf
	return f.err
}

func (f *fakeNotifier) wait(t *testing.T) notify.Confirmation {
	t.Helper()
	select {
	case conf := <-f.sent:
		return conf
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for confirmation dispatch")
		return notify.Confirmation{}
	}
}

func newSubmitUC(notifier notify.Notifier) *SubmitBooking {
	return NewSubmitBooking(catalog.New(), store.NewMemoryStore(), notify.NewDispatcher(notifier))
}

func validInput() SubmitBookingInput {
	return SubmitBookingInput{
		ServiceID: "facial",
		SlotID:    "1",
		Name:      "John Doe",
		Email:     "john@example.com",
	}
}

func fieldMessage(err error, field string) (string, bool) {
	ve, ok := httperr.AsValidation(err)
	if !ok {
		return "", false
	}
	for _, f := range ve.Fields {
		if f.Field == field {
			return f.Message, true
		}
	}
	return "", false
}

func TestSubmitBookingSuccess(t *testing.T) {
	notifier := newFakeNotifier()
	uc := newSubmitUC(notifier)

	record, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if record.Name != "John Doe" {
		t.Errorf("Name = %q, want %q", record.Name, "John Doe")
	}
	if record.Email != "john@example.com" {
		t.Errorf("Email = %q, want %q", record.Email, "john@example.com")
	}
	if record.ServiceID != "facial" {
		t.Errorf("ServiceID = %q, want %q", record.ServiceID, "facial")
	}
	// The record carries the display label, not the raw slot id.
	if record.Timeslot != "09:00" {
		t.Errorf("Timeslot = %q, want %q", record.Timeslot, "09:00")
	}
	if record.TimeslotID != "1" {
		t.Errorf("TimeslotID = %q, want %q", record.TimeslotID, "1")
	}

	conf := notifier.wait(t)
	if conf.ServiceName != "Facial Treatment" {
		t.Errorf("Confirmation service = %q, want %q", conf.ServiceName, "Facial Treatment")
	}
	if conf.Duration != "60 minutes" {
		t.Errorf("Confirmation duration = %q, want %q", conf.Duration, "60 minutes")
	}
	if conf.Timeslot != "09:00" {
		t.Errorf("Confirmation timeslot = %q, want %q", conf.Timeslot, "09:00")
	}
}

func TestSubmitBookingSanitization(t *testing.T) {
	uc := newSubmitUC(newFakeNotifier())

	in := validInput()
	in.Name = "  John   Doe  "
	in.Email = " JOHN@Example.COM "

	record, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if record.Name != "John Doe" {
		t.Errorf("Name = %q, want %q", record.Name, "John Doe")
	}
	if record.Email != "john@example.com" {
		t.Errorf("Email = %q, want %q", record.Email, "john@example.com")
	}
}

func TestSubmitBookingValidation(t *testing.T) {
	tests := []struct {
		testName string
		mutate   func(*SubmitBookingInput)
		field    string
		message  string
	}{
		{
			testName: "short name",
			mutate:   func(in *SubmitBookingInput) { in.Name = "J" },
			field:    "name",
			message:  "Name must be at least 2 characters",
		},
		{
			testName: "name with digits",
			mutate:   func(in *SubmitBookingInput) { in.Name = "John123" },
			field:    "name",
			message:  "Name can only contain letters and spaces",
		},
		{
			testName: "whitespace-padded single letter",
			mutate:   func(in *SubmitBookingInput) { in.Name = "  J  " },
			field:    "name",
			message:  "Name must contain at least 2 characters",
		},
		{
			testName: "missing name",
			mutate:   func(in *SubmitBookingInput) { in.Name = "" },
			field:    "name",
			message:  "Name is required",
		},
		{
			testName: "bad email",
			mutate:   func(in *SubmitBookingInput) { in.Email = "bad" },
			field:    "email",
			message:  "Please enter a valid email address",
		},
		{
			testName: "missing email",
			mutate:   func(in *SubmitBookingInput) { in.Email = "" },
			field:    "email",
			message:  "Email is required",
		},
		{
			testName: "missing slot",
			mutate:   func(in *SubmitBookingInput) { in.SlotID = "" },
			field:    "timeslot",
			message:  "Please select a timeslot",
		},
	}

	for _, tc := range tests {
		t.Run(tc.testName, func(t *testing.T) {
			uc := newSubmitUC(newFakeNotifier())

			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if err == nil {
				t.Fatal("Expected validation error, got success")
			}

			msg, ok := fieldMessage(err, tc.field)
			if !ok {
				t.Fatalf("Expected field error on %q, got %v", tc.field, err)
			}
			if msg != tc.message {
				t.Errorf("Message = %q, want %q", msg, tc.message)
			}
		})
	}
}

func TestSubmitBookingValidationDoesNotTouchStore(t *testing.T) {
	st := store.NewMemoryStore()
	uc := NewSubmitBooking(catalog.New(), st, notify.NewDispatcher(newFakeNotifier()))

	in := validInput()
	in.Name = "J"

	if _, err := uc.Execute(context.Background(), in); err == nil {
		t.Fatal("Expected validation error")
	}

	booked, _ := st.IsBooked(context.Background(), "facial", "1")
	if booked {
		t.Error("Rejected submission must not mutate the store")
	}
}

func TestSubmitBookingMissingService(t *testing.T) {
	uc := newSubmitUC(newFakeNotifier())

	in := validInput()
	in.ServiceID = ""

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "missing_service") {
		t.Errorf("Expected missing_service, got %v", err)
	}
}

func TestSubmitBookingUnknownService(t *testing.T) {
	uc := newSubmitUC(newFakeNotifier())

	in := validInput()
	in.ServiceID = "unknown-service"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Errorf("Expected service_not_found, got %v", err)
	}
}

func TestSubmitBookingUnknownSlot(t *testing.T) {
	uc := newSubmitUC(newFakeNotifier())

	in := validInput()
	in.SlotID = "99"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_not_found") {
		t.Errorf("Expected slot_not_found, got %v", err)
	}
}

func TestSubmitBookingConflict(t *testing.T) {
	uc := newSubmitUC(newFakeNotifier())
	ctx := context.Background()

	if _, err := uc.Execute(ctx, validInput()); err != nil {
		t.Fatalf("First booking failed: %v", err)
	}

	_, err := uc.Execute(ctx, SubmitBookingInput{
		ServiceID: "facial",
		SlotID:    "1",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})
	if !httperr.IsBusiness(err, "slot_conflict") {
		t.Errorf("Expected slot_conflict, got %v", err)
	}
}

func TestSubmitBookingConcurrentSameSlot(t *testing.T) {
	uc := newSubmitUC(newFakeNotifier())

	const workers = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validInput())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case httperr.IsBusiness(err, "slot_conflict"):
				conflicts++
			default:
				t.Errorf("Unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("Expected exactly 1 success, got %d", successes)
	}
	if conflicts != workers-1 {
		t.Errorf("Expected %d conflicts, got %d", workers-1, conflicts)
	}
}

func TestSubmitBookingNotifierFailureIsSwallowed(t *testing.T) {
	notifier := newFakeNotifier()
	notifier.err = errors.New("smtp down")
	uc := newSubmitUC(notifier)

	record, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Notifier failure must not surface, got %v", err)
	}
	if record == nil {
		t.Fatal("Expected a booking record")
	}

	notifier.wait(t)
}
