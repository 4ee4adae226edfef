package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/RijanKanxo/travel-App/api/mocks"
	"github.com/RijanKanxo/travel-App/external/identity"
	"github.com/RijanKanxo/travel-App/schema"
)

// The journal group registers the static /list and /create routes next to
// the parameterized /:id/like route in the same path segment. Older router
// trees reject that mix at registration time, so building the full route
// table and serving both shapes through one engine guards the whole HTTP
// surface against a router regression.
func TestRouterServesStaticAndParamSiblings(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTravelCore(ctl)
	provider := mocks.NewMockProvider(ctl)
	s := Server{store: core, identity: provider}

	core.EXPECT().ListJournalEntries(1, 10, "all").Return([]schema.EnrichedJournalEntry{}, 0, nil).Times(1)
	provider.EXPECT().VerifyToken("test-token").Return(&identity.User{ID: "user-1"}, nil).Times(1)
	core.EXPECT().ToggleJournalLike("user-1", "entry-1").Return(1, true, nil).Times(1)

	r := testRouter(&s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/journal/list", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	likeReq := httptest.NewRequest("POST", "/api/journal/entry-1/like", nil)
	likeReq.Header.Set("Authorization", "Bearer test-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, likeReq)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Likes int  `json:"likes"`
		Liked bool `json:"liked"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Equal(t, 1, jResp.Likes)
}

func TestHealth(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockTravelCore(ctl), identity: mocks.NewMockProvider(ctl)}

	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Equal(t, "healthy", jResp.Status)
}
