package domain

import "testing"

func TestActionTag(t *testing.T) {
	if got := (Action{Kind: ActionCalendar}).Tag(); got != "[CALENDAR]" {
		t.Fatalf("calendar tag = %q", got)
	}
	if got := (Action{Kind: ActionBooking, ServiceID: "spa-1"}).Tag(); got != "[BOOKING:spa-1]" {
		t.Fatalf("booking tag = %q", got)
	}
}

func TestReplyRender(t *testing.T) {
	r := Reply{Text: "Great choice! I can help you book Swedish Massage.",
		Actions: []Action{{Kind: ActionBooking, ServiceID: "spa-1"}}}
	want := "Great choice! I can help you book Swedish Massage. [BOOKING:spa-1]"
	if got := r.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}

	plain := Reply{Text: "The guest wifi network is AIButler-Guest."}
	if got := plain.Render(); got != plain.Text {
		t.Fatalf("Render() with no actions = %q", got)
	}
}

func TestEmptyCatalog(t *testing.T) {
	snap := EmptyCatalog()
	if !snap.Empty() {
		t.Fatal("EmptyCatalog() should report Empty()")
	}
	snap.Restaurants = []ServiceRecord{{ID: "r1", Name: "Bistro"}}
	if snap.Empty() {
		t.Fatal("catalog with a restaurant should not be Empty()")
	}
}
