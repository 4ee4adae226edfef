package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RijanKanxo/travel-App/schema"
)

const defaultAlertLifetimeHours = 24

// AlertParams carries the caller-supplied fields of a new alert.
type AlertParams struct {
	Type           string
	Severity       string
	Title          string
	Message        string
	Location       string
	ExpiresInHours int
}

type Alert interface {
	CreateAlert(createdBy string, params AlertParams) (*schema.Alert, error)
	ListAlerts(location, alertType string) ([]schema.Alert, error)
	DeleteExpiredAlerts() (int, error)
}

// CreateAlert persists a new alert expiring after the requested number of
// hours (24 when unset).
func (s *TravelStore) CreateAlert(createdBy string, params AlertParams) (*schema.Alert, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	hours := params.ExpiresInHours
	if hours <= 0 {
		hours = defaultAlertLifetimeHours
	}

	now := time.Now().UTC()
	alert := schema.Alert{
		ID:        uuid.New().String(),
		Type:      params.Type,
		Severity:  params.Severity,
		Title:     params.Title,
		Message:   params.Message,
		Location:  params.Location,
		CreatedBy: createdBy,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(hours) * time.Hour),
	}

	if err := s.kv.Set(ctx, alertKeyPrefix+alert.ID, alert); err != nil {
		return nil, err
	}

	return &alert, nil
}

// ListAlerts scans all alerts and returns the active ones, optionally
// filtered by a location substring and an exact type, sorted by severity
// rank then recency. Expired alerts stay in storage but never appear here.
func (s *TravelStore) ListAlerts(location, alertType string) ([]schema.Alert, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	raw, err := s.kv.GetByPrefix(ctx, alertKeyPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	location = strings.ToLower(location)

	alerts := make([]schema.Alert, 0, len(raw))
	for _, data := range raw {
		var alert schema.Alert
		if err := json.Unmarshal(data, &alert); err != nil {
			return nil, err
		}
		if !alert.Active(now) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(alert.Location), location) {
			continue
		}
		if alertType != "" && alertType != "all" && alert.Type != alertType {
			continue
		}
		alerts = append(alerts, alert)
	}

	sort.Slice(alerts, func(i, j int) bool {
		ri, rj := schema.SeverityRank[alerts[i].Severity], schema.SeverityRank[alerts[j].Severity]
		if ri != rj {
			return ri > rj
		}
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})

	return alerts, nil
}

// DeleteExpiredAlerts sweeps expired alert records out of storage and
// returns how many were removed. Reads never depend on this having run; it
// only keeps the alert keyspace from growing forever.
func (s *TravelStore) DeleteExpiredAlerts() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	raw, err := s.kv.GetByPrefix(ctx, alertKeyPrefix)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	deleted := 0
	for _, data := range raw {
		var alert schema.Alert
		if err := json.Unmarshal(data, &alert); err != nil {
			return deleted, err
		}
		if alert.Active(now) {
			continue
		}
		if err := s.kv.Delete(ctx, alertKeyPrefix+alert.ID); err != nil {
			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}
