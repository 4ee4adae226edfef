package schema

import "time"

const (
	UserTypeTraveler       = "traveler"
	UserTypeLocalGuide     = "local_guide"
	UserTypeLocalAuthority = "local_authority"
)

// UserProfile is the public record of a registered user. It is created once
// at signup and mutated only through profile updates, never deleted.
type UserProfile struct {
	UserID          string     `json:"user_id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	UserType        string     `json:"user_type"`
	Location        string     `json:"location"`
	Verified        bool       `json:"verified"`
	SafetyRating    float64    `json:"safety_rating"`
	Bio             string     `json:"bio"`
	Languages       []string   `json:"languages"`
	ExperienceYears int        `json:"experience_years"`
	Specialties     []string   `json:"specialties"`
	Rating          float64    `json:"rating"`
	ReviewCount     int        `json:"review_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// CanCreateAlerts reports whether the profile owner is allowed to publish
// alerts: either a verified user or a local authority.
func (p *UserProfile) CanCreateAlerts() bool {
	return p.Verified || p.UserType == UserTypeLocalAuthority
}
