package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RijanKanxo/travel-App/schema"
)

var ErrJournalEntryNotFound = fmt.Errorf("journal entry not found")

// JournalEntryParams carries the caller-supplied fields of a new entry.
type JournalEntryParams struct {
	Title        string
	Content      string
	Location     string
	Tags         []string
	Images       []string
	SafetyRating int
}

type Journal interface {
	CreateJournalEntry(userID string, params JournalEntryParams) (*schema.JournalEntry, error)
	ListJournalEntries(page, limit int, category string) ([]schema.EnrichedJournalEntry, int, error)
	ToggleJournalLike(userID, entryID string) (int, bool, error)
}

// CreateJournalEntry persists a new entry with zeroed engagement counters
// and prepends its id to the author's journal index.
func (s *TravelStore) CreateJournalEntry(userID string, params JournalEntryParams) (*schema.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	entry := schema.JournalEntry{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        params.Title,
		Content:      params.Content,
		Location:     params.Location,
		Tags:         params.Tags,
		Images:       params.Images,
		SafetyRating: params.SafetyRating,
		Likes:        0,
		Comments:     []interface{}{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}
	if entry.Images == nil {
		entry.Images = []string{}
	}
	if entry.SafetyRating == 0 {
		entry.SafetyRating = 5
	}

	if err := s.kv.Set(ctx, journalKeyPrefix+entry.ID, entry); err != nil {
		return nil, err
	}

	userJournals := []string{}
	if err := s.kv.Get(ctx, userJournalsKeyPrefix+userID, &userJournals); err != nil && err != ErrKeyNotFound {
		return nil, err
	}
	userJournals = append([]string{entry.ID}, userJournals...)
	if err := s.kv.Set(ctx, userJournalsKeyPrefix+userID, userJournals); err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListJournalEntries scans all entries, filters by tag category, sorts
// newest-first, paginates and joins each page entry with its author profile.
// The returned total counts matches before pagination.
func (s *TravelStore) ListJournalEntries(page, limit int, category string) ([]schema.EnrichedJournalEntry, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	raw, err := s.kv.GetByPrefix(ctx, journalKeyPrefix)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]schema.JournalEntry, 0, len(raw))
	for _, data := range raw {
		var entry schema.JournalEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, 0, err
		}
		if category != "" && category != "all" && !tagsMatch(entry.Tags, category) {
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	total := len(entries)
	start, end := pageBounds(total, page, limit)
	pageEntries := entries[start:end]

	enriched := make([]schema.EnrichedJournalEntry, 0, len(pageEntries))
	for _, entry := range pageEntries {
		e := schema.EnrichedJournalEntry{JournalEntry: entry}
		profile, err := s.GetProfile(entry.UserID)
		switch err {
		case nil:
			e.Author = &schema.AuthorSummary{
				Name:        profile.Name,
				Verified:    profile.Verified,
				Nationality: profile.Location,
				UserType:    profile.UserType,
			}
		case ErrProfileNotFound:
			// author account is gone, keep the entry with a null author
		default:
			return nil, 0, err
		}
		enriched = append(enriched, e)
	}

	return enriched, total, nil
}

// ToggleJournalLike flips the caller's like on an entry. The like index
// (user_likes:<id>) decides the direction: present means unlike. It returns
// the new like count and the new liked state. The entry and the index are
// two separate writes; concurrent toggles by the same user may race.
func (s *TravelStore) ToggleJournalLike(userID, entryID string) (int, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var entry schema.JournalEntry
	if err := s.kv.Get(ctx, journalKeyPrefix+entryID, &entry); err != nil {
		if err == ErrKeyNotFound {
			return 0, false, ErrJournalEntryNotFound
		}
		return 0, false, err
	}

	userLikes := []string{}
	if err := s.kv.Get(ctx, userLikesKeyPrefix+userID, &userLikes); err != nil && err != ErrKeyNotFound {
		return 0, false, err
	}

	hasLiked := false
	for _, id := range userLikes {
		if id == entryID {
			hasLiked = true
			break
		}
	}

	if hasLiked {
		if entry.Likes > 0 {
			entry.Likes--
		}
		kept := make([]string, 0, len(userLikes))
		for _, id := range userLikes {
			if id != entryID {
				kept = append(kept, id)
			}
		}
		userLikes = kept
	} else {
		entry.Likes++
		userLikes = append(userLikes, entryID)
	}

	if err := s.kv.Set(ctx, userLikesKeyPrefix+userID, userLikes); err != nil {
		return 0, false, err
	}
	if err := s.kv.Set(ctx, journalKeyPrefix+entryID, entry); err != nil {
		return 0, false, err
	}

	return entry.Likes, !hasLiked, nil
}

// tagsMatch reports whether any tag contains the category as a
// case-insensitive substring.
func tagsMatch(tags []string, category string) bool {
	category = strings.ToLower(category)
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), category) {
			return true
		}
	}
	return false
}
