package schema

import "time"

const (
	SeverityInfo      = "info"
	SeverityWarning   = "warning"
	SeverityDanger    = "danger"
	SeverityEmergency = "emergency"
)

// SeverityRank orders alerts for listing. Unknown severities rank lowest.
var SeverityRank = map[string]int{
	SeverityEmergency: 4,
	SeverityDanger:    3,
	SeverityWarning:   2,
	SeverityInfo:      1,
}

// Alert is a broadcast notice with a fixed lifetime. Alerts are never
// deleted through the API surface; once expires_at passes they are filtered
// out of every read (lazy expiry) and eventually swept by the background
// eviction job.
type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Location  string    `json:"location"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Active reports whether the alert has not yet expired at the given time.
func (a *Alert) Active(now time.Time) bool {
	return a.ExpiresAt.After(now)
}
