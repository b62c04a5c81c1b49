package domain

import "strings"

// ActionKind names a UI affordance the presentation layer should surface.
type ActionKind string

const (
	ActionCalendar ActionKind = "CALENDAR" // show a scheduling UI
	ActionBooking  ActionKind = "BOOKING"  // show a booking confirmation
)

// Action is a machine-readable marker attached to a reply. Booking actions
// carry the id of the referenced service.
type Action struct {
	Kind      ActionKind
	ServiceID string
}

func (a Action) Tag() string {
	if a.Kind == ActionBooking && a.ServiceID != "" {
		return "[" + string(ActionBooking) + ":" + a.ServiceID + "]"
	}
	return "[" + string(a.Kind) + "]"
}

// Reply is the structured result of query resolution. Actions are kept
// separate from the text and serialized to the bracketed-tag convention
// only at the boundary, via Render.
type Reply struct {
	Text    string
	Actions []Action
}

// Render flattens the reply to the wire form: text followed by one
// space-separated tag per action.
func (r Reply) Render() string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(r.Text, " "))
	for _, a := range r.Actions {
		b.WriteString(" ")
		b.WriteString(a.Tag())
	}
	return b.String()
}
