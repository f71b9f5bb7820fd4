package catalog

import "testing"

func TestLookup(t *testing.T) {
	cat := New()

	svc, ok := cat.Lookup("facial")
	if !ok {
		t.Fatal("facial should exist")
	}
	if svc.Name != "Facial Treatment" {
		t.Errorf("Expected name 'Facial Treatment', got %q", svc.Name)
	}
	if svc.Duration != "60 minutes" {
		t.Errorf("Expected duration '60 minutes', got %q", svc.Duration)
	}

	if _, ok := cat.Lookup("unknown-service"); ok {
		t.Error("unknown-service should not resolve")
	}
}

func TestServicesOrder(t *testing.T) {
	cat := New()

	svcs := cat.Services()
	if len(svcs) != 3 {
		t.Fatalf("Expected 3 services, got %d", len(svcs))
	}

	want := []string{"facial", "botox", "hair-removal"}
	for i, id := range want {
		if svcs[i].ID != id {
			t.Errorf("Service %d: expected %q, got %q", i, id, svcs[i].ID)
		}
	}
}

func TestSlotTemplates(t *testing.T) {
	cat := New()

	tests := []struct {
		serviceID string
		count     int
		first     string
		last      string
	}{
		{"facial", 9, "09:00", "17:00"},
		{"botox", 16, "09:00", "17:00"},
		{"hair-removal", 10, "09:00", "18:00"},
	}

	for _, tc := range tests {
		slots := cat.Slots(tc.serviceID)
		if len(slots) != tc.count {
			t.Errorf("%s: expected %d slots, got %d", tc.serviceID, tc.count, len(slots))
			continue
		}
		if slots[0].Time != tc.first {
			t.Errorf("%s: first slot %q, want %q", tc.serviceID, slots[0].Time, tc.first)
		}
		if slots[len(slots)-1].Time != tc.last {
			t.Errorf("%s: last slot %q, want %q", tc.serviceID, slots[len(slots)-1].Time, tc.last)
		}
		for _, s := range slots {
			if !s.Available {
				t.Errorf("%s: template slot %s should be available", tc.serviceID, s.ID)
			}
		}
	}

	if slots := cat.Slots("unknown-service"); len(slots) != 0 {
		t.Errorf("Unknown service should have no slots, got %d", len(slots))
	}
}
