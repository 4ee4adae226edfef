package schema

import "time"

// ServiceListing is a marketplace offer published by a provider.
type ServiceListing struct {
	ID             string    `json:"id"`
	ProviderID     string    `json:"provider_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	Duration       string    `json:"duration"`
	MaxPeople      int       `json:"max_people"`
	Location       string    `json:"location"`
	Images         []string  `json:"images"`
	Specialties    []string  `json:"specialties"`
	SafetyFeatures []string  `json:"safety_features"`
	Rating         float64   `json:"rating"`
	ReviewCount    int       `json:"review_count"`
	Bookings       int       `json:"bookings"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProviderSummary is the trimmed profile view attached to listed services.
type ProviderSummary struct {
	Name            string   `json:"name"`
	Verified        bool     `json:"verified"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	ExperienceYears int      `json:"experience_years"`
	Languages       []string `json:"languages"`
}

// EnrichedServiceListing is a service joined with its provider profile at
// read time. Provider is null when the profile no longer exists.
type EnrichedServiceListing struct {
	ServiceListing
	Provider *ProviderSummary `json:"provider"`
}
