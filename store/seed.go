package store

import (
	"context"
	"io/ioutil"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/RijanKanxo/travel-App/schema"
)

// seedAlert is one fixture record. Ids are fixed in the fixture file so
// concurrent cold starts upsert the same documents instead of duplicating
// them.
type seedAlert struct {
	ID             string `yaml:"id"`
	Type           string `yaml:"type"`
	Severity       string `yaml:"severity"`
	Title          string `yaml:"title"`
	Message        string `yaml:"message"`
	Location       string `yaml:"location"`
	ExpiresInHours int    `yaml:"expires_in_hours"`
}

// SeedSampleAlerts inserts the sample alerts from the fixture file when the
// alert keyspace is empty. The existence check makes it idempotent across
// restarts.
func (s *TravelStore) SeedSampleAlerts(fixturePath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	existing, err := s.kv.GetByPrefix(ctx, alertKeyPrefix)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.WithField("prefix", "seed").Info("sample alerts already exist, skipping initialization")
		return nil
	}

	data, err := ioutil.ReadFile(fixturePath)
	if err != nil {
		return err
	}

	var seeds []seedAlert
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, seed := range seeds {
		alert := schema.Alert{
			ID:        seed.ID,
			Type:      seed.Type,
			Severity:  seed.Severity,
			Title:     seed.Title,
			Message:   seed.Message,
			Location:  seed.Location,
			CreatedBy: "system",
			CreatedAt: now,
			ExpiresAt: now.Add(time.Duration(seed.ExpiresInHours) * time.Hour),
		}
		if err := s.kv.Set(ctx, alertKeyPrefix+alert.ID, alert); err != nil {
			return err
		}
	}

	log.WithField("prefix", "seed").Infof("seeded %d sample alerts", len(seeds))
	return nil
}
