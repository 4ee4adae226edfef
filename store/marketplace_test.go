package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/RijanKanxo/travel-App/schema"
)

type MarketplaceTestSuite struct {
	suite.Suite
	kv    KeyValueStore
	store *TravelStore
}

func (s *MarketplaceTestSuite) SetupTest() {
	s.kv = NewMemoryKeyValueStore()
	s.store = NewTravelStore(s.kv)
}

func (s *MarketplaceTestSuite) putService(service schema.ServiceListing) {
	s.NoError(s.kv.Set(context.Background(), serviceKeyPrefix+service.ID, service))
}

func (s *MarketplaceTestSuite) TestCreateServiceDefaults() {
	service, err := s.store.CreateService("guide-1", ServiceParams{
		Title:       "Annapurna sunrise tour",
		Description: "Day trip to Poon Hill",
		Category:    "trekking",
		Price:       80,
	})
	s.NoError(err)
	s.True(service.Available)
	s.Equal(1, service.MaxPeople)
	s.Equal(float64(0), service.Rating)
	s.NotNil(service.Images)

	var index []string
	s.NoError(s.kv.Get(context.Background(), providerServicesKeyPrefix+"guide-1", &index))
	s.Equal([]string{service.ID}, index)
}

func (s *MarketplaceTestSuite) TestListServicesSkipsUnavailable() {
	s.putService(schema.ServiceListing{ID: "open", Category: "trekking", Available: true})
	s.putService(schema.ServiceListing{ID: "closed", Category: "trekking", Available: false})

	services, total, err := s.store.ListServices(1, 12, "all", "")
	s.NoError(err)
	s.Equal(1, total)
	s.Equal("open", services[0].ID)
}

func (s *MarketplaceTestSuite) TestListServicesFilters() {
	s.putService(schema.ServiceListing{ID: "trek-ktm", Category: "trekking", Location: "Kathmandu", Available: true})
	s.putService(schema.ServiceListing{ID: "trek-pkr", Category: "trekking", Location: "Pokhara Lakeside", Available: true})
	s.putService(schema.ServiceListing{ID: "food-pkr", Category: "food", Location: "Pokhara", Available: true})

	// category is an exact match, unlike the substring location filter
	trekking, total, err := s.store.ListServices(1, 12, "trekking", "")
	s.NoError(err)
	s.Equal(2, total)
	s.Len(trekking, 2)

	pokhara, total, err := s.store.ListServices(1, 12, "all", "pokhara")
	s.NoError(err)
	s.Equal(2, total)
	s.Len(pokhara, 2)

	both, total, err := s.store.ListServices(1, 12, "food", "Pokhara")
	s.NoError(err)
	s.Equal(1, total)
	s.Equal("food-pkr", both[0].ID)
}

func (s *MarketplaceTestSuite) TestListServicesSortByRatingThenRecency() {
	now := time.Now().UTC()
	s.putService(schema.ServiceListing{ID: "top", Rating: 4.9, Available: true, CreatedAt: now.Add(-time.Hour)})
	s.putService(schema.ServiceListing{ID: "new-unrated", Rating: 0, Available: true, CreatedAt: now})
	s.putService(schema.ServiceListing{ID: "old-unrated", Rating: 0, Available: true, CreatedAt: now.Add(-2 * time.Hour)})

	services, _, err := s.store.ListServices(1, 12, "", "")
	s.NoError(err)
	s.Require().Len(services, 3)
	s.Equal("top", services[0].ID)
	s.Equal("new-unrated", services[1].ID)
	s.Equal("old-unrated", services[2].ID)
}

func (s *MarketplaceTestSuite) TestListServicesEnrichment() {
	s.NoError(s.store.CreateProfile(schema.UserProfile{
		UserID:          "guide-1",
		Name:            "Pemba",
		Verified:        true,
		Rating:          4.8,
		ReviewCount:     35,
		ExperienceYears: 10,
		Languages:       []string{"English", "Nepali"},
	}))

	s.putService(schema.ServiceListing{ID: "with-provider", ProviderID: "guide-1", Available: true})
	s.putService(schema.ServiceListing{ID: "orphan", ProviderID: "ghost", Available: true})

	services, _, err := s.store.ListServices(1, 12, "", "")
	s.NoError(err)
	s.Require().Len(services, 2)

	for _, service := range services {
		switch service.ID {
		case "with-provider":
			s.Require().NotNil(service.Provider)
			s.Equal("Pemba", service.Provider.Name)
			s.Equal(35, service.Provider.ReviewCount)
		case "orphan":
			s.Nil(service.Provider)
		}
	}
}

func TestMarketplaceTestSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceTestSuite))
}
