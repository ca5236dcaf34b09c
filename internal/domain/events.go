package domain

import "time"

type EventType string

const (
	EventRequestCreated    EventType = "helpRequestCreated"
	EventRequestUpdated    EventType = "helpRequestUpdated"
	EventDonationCompleted EventType = "donationCompleted"
)

// Event carries the full post-commit entity. Events are published after the
// underlying transition has committed, in commit order per request.
type Event struct {
	Type     EventType    `json:"type"`
	Request  *HelpRequest `json:"help_request,omitempty"`
	Donation *Donation    `json:"donation,omitempty"`
	At       time.Time    `json:"at"`

	// Origin identifies the publishing instance so the pub/sub bridge can
	// drop its own echo.
	Origin string `json:"origin,omitempty"`
}
