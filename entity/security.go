package entity

import "time"

type SecurityLevel string

const (
	SecurityLow      SecurityLevel = "low"
	SecurityMedium   SecurityLevel = "medium"
	SecurityHigh     SecurityLevel = "high"
	SecurityCritical SecurityLevel = "critical"
)

// Valid reports whether s is one of the known severity levels.
func (s SecurityLevel) Valid() bool {
	switch s {
	case SecurityLow, SecurityMedium, SecurityHigh, SecurityCritical:
		return true
	}
	return false
}

type SecurityEvent struct {
	ID          string        `json:"id"`
	TreeID      string        `json:"tree_id"`
	LotID       int           `json:"lot_id"`
	EventType   string        `json:"event_type"`
	Severity    SecurityLevel `json:"severity"`
	Description string        `json:"description"`
	Location    GeoPoint      `json:"location"`
	Timestamp   time.Time     `json:"timestamp"`
	Resolved    bool          `json:"resolved"`
}

type SecurityEventsResponse struct {
	Events           []SecurityEvent `json:"events"`
	TotalEvents      int             `json:"total_events"`
	CriticalEvents   int             `json:"critical_events"`
	UnresolvedEvents int             `json:"unresolved_events"`
}
