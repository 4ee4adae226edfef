package store

// Record key layout in the key-value store. List-valued keys
// (user_journals, user_likes, provider_services, all_questions) simulate
// secondary indexes; the store offers no real ones.
const (
	profileKeyPrefix          = "user_profile:"
	journalKeyPrefix          = "journal:"
	userJournalsKeyPrefix     = "user_journals:"
	userLikesKeyPrefix        = "user_likes:"
	serviceKeyPrefix          = "service:"
	providerServicesKeyPrefix = "provider_services:"
	questionKeyPrefix         = "question:"
	allQuestionsKey           = "all_questions"
	alertKeyPrefix            = "alert:"
)

// TravelCore is the main datastore of the travel platform.
type TravelCore interface {
	Pinger

	Profile
	Journal
	Marketplace
	Question
	Alert
}

// TravelStore is an implementation of TravelCore over a KeyValueStore.
type TravelStore struct {
	kv KeyValueStore
}

func NewTravelStore(kv KeyValueStore) *TravelStore {
	return &TravelStore{
		kv: kv,
	}
}

// Ping is to check the storage health status
func (s *TravelStore) Ping() error {
	return s.kv.Ping()
}
