package schema

import "time"

const (
	UrgencyLow       = "low"
	UrgencyMedium    = "medium"
	UrgencyHigh      = "high"
	UrgencyEmergency = "emergency"

	QuestionOpen     = "open"
	QuestionAnswered = "answered"
	QuestionUrgent   = "urgent"
)

// UrgencyRank orders questions for listing. Unknown urgencies rank lowest.
var UrgencyRank = map[string]int{
	UrgencyEmergency: 3,
	UrgencyHigh:      2,
	UrgencyMedium:    1,
	UrgencyLow:       0,
}

// Question is a help request raised by a traveler. Responses are appended in
// place; answering a question sets its status to "answered".
type Question struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Question  string     `json:"question"`
	Location  string     `json:"location"`
	Category  string     `json:"category"`
	Urgency   string     `json:"urgency"`
	Status    string     `json:"status"`
	Responses []Response `json:"responses"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Response is a single answer attached to a question.
type Response struct {
	ID          string    `json:"id"`
	ResponderID string    `json:"responder_id"`
	Response    string    `json:"response"`
	Helpful     int       `json:"helpful"`
	CreatedAt   time.Time `json:"created_at"`
}

// AskerSummary is the trimmed profile view of a question's author.
type AskerSummary struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

// ResponderSummary is the trimmed profile view of a response's author.
type ResponderSummary struct {
	Name     string  `json:"name"`
	Verified bool    `json:"verified"`
	UserType string  `json:"user_type"`
	Rating   float64 `json:"rating"`
}

// EnrichedResponse joins a response with its responder profile. Responder is
// null when the profile no longer exists.
type EnrichedResponse struct {
	Response
	Responder *ResponderSummary `json:"responder"`
}

// EnrichedQuestion joins a question with its asker profile and the enriched
// responses.
type EnrichedQuestion struct {
	Question
	Responses []EnrichedResponse `json:"responses"`
	User      *AskerSummary      `json:"user"`
}
