package schema

import "time"

// JournalEntry is a travel journal post. The likes counter is mutated by the
// like-toggle operation; entries are never deleted through the API.
type JournalEntry struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Location     string        `json:"location"`
	Tags         []string      `json:"tags"`
	Images       []string      `json:"images"`
	SafetyRating int           `json:"safety_rating"`
	Likes        int           `json:"likes"`
	Comments     []interface{} `json:"comments"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// AuthorSummary is the trimmed profile view attached to listed journal
// entries. Nationality mirrors the author's profile location.
type AuthorSummary struct {
	Name        string `json:"name"`
	Verified    bool   `json:"verified"`
	Nationality string `json:"nationality"`
	UserType    string `json:"user_type"`
}

// EnrichedJournalEntry is a journal entry joined with its author profile at
// read time. Author is null when the profile no longer exists.
type EnrichedJournalEntry struct {
	JournalEntry
	Author *AuthorSummary `json:"author"`
}
