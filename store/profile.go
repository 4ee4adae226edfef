package store

import (
	"context"
	"fmt"
	"time"

	"github.com/RijanKanxo/travel-App/schema"
)

var ErrProfileNotFound = fmt.Errorf("profile not found")

// guardedProfileFields are identity fields a profile update may never touch.
var guardedProfileFields = map[string]struct{}{
	"user_id":    {},
	"email":      {},
	"created_at": {},
}

type Profile interface {
	CreateProfile(profile schema.UserProfile) error
	GetProfile(userID string) (*schema.UserProfile, error)
	UpdateProfile(userID string, updates map[string]interface{}) (map[string]interface{}, error)
}

// CreateProfile stores the profile record of a freshly registered user.
func (s *TravelStore) CreateProfile(profile schema.UserProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return s.kv.Set(ctx, profileKeyPrefix+profile.UserID, profile)
}

// GetProfile returns the profile of a given user id.
func (s *TravelStore) GetProfile(userID string) (*schema.UserProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var profile schema.UserProfile
	if err := s.kv.Get(ctx, profileKeyPrefix+userID, &profile); err != nil {
		if err == ErrKeyNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile shallow-merges the caller-supplied fields over the stored
// record and stamps updated_at. The schema is intentionally open: unknown
// fields are kept, only identity fields are skipped during the merge. It
// returns the merged record.
func (s *TravelStore) UpdateProfile(userID string, updates map[string]interface{}) (map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	current := map[string]interface{}{}
	if err := s.kv.Get(ctx, profileKeyPrefix+userID, &current); err != nil {
		if err == ErrKeyNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	for k, v := range updates {
		if _, guarded := guardedProfileFields[k]; guarded {
			continue
		}
		current[k] = v
	}
	current["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.kv.Set(ctx, profileKeyPrefix+userID, current); err != nil {
		return nil, err
	}

	return current, nil
}
