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

// ServiceParams carries the caller-supplied fields of a new listing.
type ServiceParams struct {
	Title          string
	Description    string
	Category       string
	Price          float64
	Duration       string
	MaxPeople      int
	Location       string
	Images         []string
	Specialties    []string
	SafetyFeatures []string
}

type Marketplace interface {
	CreateService(providerID string, params ServiceParams) (*schema.ServiceListing, error)
	ListServices(page, limit int, category, location string) ([]schema.EnrichedServiceListing, int, error)
}

// CreateService persists a new listing, available by default, and appends
// its id to the provider's service index.
func (s *TravelStore) CreateService(providerID string, params ServiceParams) (*schema.ServiceListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	service := schema.ServiceListing{
		ID:             uuid.New().String(),
		ProviderID:     providerID,
		Title:          params.Title,
		Description:    params.Description,
		Category:       params.Category,
		Price:          params.Price,
		Duration:       params.Duration,
		MaxPeople:      params.MaxPeople,
		Location:       params.Location,
		Images:         params.Images,
		Specialties:    params.Specialties,
		SafetyFeatures: params.SafetyFeatures,
		Rating:         0,
		ReviewCount:    0,
		Bookings:       0,
		Available:      true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if service.MaxPeople == 0 {
		service.MaxPeople = 1
	}
	if service.Images == nil {
		service.Images = []string{}
	}
	if service.Specialties == nil {
		service.Specialties = []string{}
	}
	if service.SafetyFeatures == nil {
		service.SafetyFeatures = []string{}
	}

	if err := s.kv.Set(ctx, serviceKeyPrefix+service.ID, service); err != nil {
		return nil, err
	}

	providerServices := []string{}
	if err := s.kv.Get(ctx, providerServicesKeyPrefix+providerID, &providerServices); err != nil && err != ErrKeyNotFound {
		return nil, err
	}
	providerServices = append(providerServices, service.ID)
	if err := s.kv.Set(ctx, providerServicesKeyPrefix+providerID, providerServices); err != nil {
		return nil, err
	}

	return &service, nil
}

// ListServices scans all listings, keeps available ones matching the
// category exactly and the location as a case-insensitive substring, sorts
// by rating then recency, paginates and joins each with its provider.
func (s *TravelStore) ListServices(page, limit int, category, location string) ([]schema.EnrichedServiceListing, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	raw, err := s.kv.GetByPrefix(ctx, serviceKeyPrefix)
	if err != nil {
		return nil, 0, err
	}

	location = strings.ToLower(location)
	services := make([]schema.ServiceListing, 0, len(raw))
	for _, data := range raw {
		var service schema.ServiceListing
		if err := json.Unmarshal(data, &service); err != nil {
			return nil, 0, err
		}
		if !service.Available {
			continue
		}
		if category != "" && category != "all" && service.Category != category {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(service.Location), location) {
			continue
		}
		services = append(services, service)
	}

	sort.Slice(services, func(i, j int) bool {
		if services[i].Rating != services[j].Rating {
			return services[i].Rating > services[j].Rating
		}
		return services[i].CreatedAt.After(services[j].CreatedAt)
	})

	total := len(services)
	start, end := pageBounds(total, page, limit)
	pageServices := services[start:end]

	enriched := make([]schema.EnrichedServiceListing, 0, len(pageServices))
	for _, service := range pageServices {
		e := schema.EnrichedServiceListing{ServiceListing: service}
		profile, err := s.GetProfile(service.ProviderID)
		switch err {
		case nil:
			e.Provider = &schema.ProviderSummary{
				Name:            profile.Name,
				Verified:        profile.Verified,
				Rating:          profile.Rating,
				ReviewCount:     profile.ReviewCount,
				ExperienceYears: profile.ExperienceYears,
				Languages:       profile.Languages,
			}
		case ErrProfileNotFound:
		default:
			return nil, 0, err
		}
		enriched = append(enriched, e)
	}

	return enriched, total, nil
}
