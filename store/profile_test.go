package store

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/RijanKanxo/travel-App/schema"
)

type ProfileTestSuite struct {
	suite.Suite
	kv    KeyValueStore
	store *TravelStore
}

func (s *ProfileTestSuite) SetupTest() {
	s.kv = NewMemoryKeyValueStore()
	s.store = NewTravelStore(s.kv)
}

func (s *ProfileTestSuite) TestCreateAndGetProfile() {
	s.NoError(s.store.CreateProfile(schema.UserProfile{
		UserID:    "user-1",
		Email:     "maya@example.com",
		Name:      "Maya",
		UserType:  schema.UserTypeTraveler,
		Languages: []string{"English"},
	}))

	profile, err := s.store.GetProfile("user-1")
	s.NoError(err)
	s.Equal("Maya", profile.Name)
	s.Equal([]string{"English"}, profile.Languages)
}

func (s *ProfileTestSuite) TestGetProfileNotFound() {
	_, err := s.store.GetProfile("missing")
	s.Equal(ErrProfileNotFound, err)
}

func (s *ProfileTestSuite) TestUpdateProfileMerge() {
	s.NoError(s.store.CreateProfile(schema.UserProfile{
		UserID: "user-1",
		Email:  "maya@example.com",
		Name:   "Maya",
		Bio:    "Trekking guide",
	}))

	merged, err := s.store.UpdateProfile("user-1", map[string]interface{}{
		"name":     "Maya Gurung",
		"verified": true,
	})
	s.NoError(err)
	s.Equal("Maya Gurung", merged["name"])
	s.Equal(true, merged["verified"])
	// untouched fields survive the merge
	s.Equal("Trekking guide", merged["bio"])
	s.NotEmpty(merged["updated_at"])
}

func (s *ProfileTestSuite) TestUpdateProfileKeepsUnknownFields() {
	s.NoError(s.store.CreateProfile(schema.UserProfile{UserID: "user-1"}))

	_, err := s.store.UpdateProfile("user-1", map[string]interface{}{
		"instagram": "@maya.treks",
	})
	s.NoError(err)

	merged, err := s.store.UpdateProfile("user-1", map[string]interface{}{"bio": "hello"})
	s.NoError(err)
	s.Equal("@maya.treks", merged["instagram"])
}

func (s *ProfileTestSuite) TestUpdateProfileGuardsIdentityFields() {
	s.NoError(s.store.CreateProfile(schema.UserProfile{
		UserID: "user-1",
		Email:  "maya@example.com",
	}))

	merged, err := s.store.UpdateProfile("user-1", map[string]interface{}{
		"user_id": "user-2",
		"email":   "stolen@example.com",
		"name":    "Maya",
	})
	s.NoError(err)
	s.Equal("user-1", merged["user_id"])
	s.Equal("maya@example.com", merged["email"])
	s.Equal("Maya", merged["name"])
}

func (s *ProfileTestSuite) TestUpdateProfileNotFound() {
	_, err := s.store.UpdateProfile("missing", map[string]interface{}{"name": "x"})
	s.Equal(ErrProfileNotFound, err)
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileTestSuite))
}
