package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/RijanKanxo/travel-App/api/mocks"
	"github.com/RijanKanxo/travel-App/external/identity"
	"github.com/RijanKanxo/travel-App/schema"
	"github.com/RijanKanxo/travel-App/store"
)

func TestAskQuestion(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTravelCore(ctl)
	provider := mocks.NewMockProvider(ctl)
	s := Server{store: core, identity: provider}

	provider.EXPECT().VerifyToken(gomock.Any()).Return(&identity.User{ID: "user-1"}, nil).Times(1)
	core.EXPECT().
		CreateQuestion("user-1", store.QuestionParams{
			Question: "Is the Annapurna Circuit open in July?",
			Urgency:  schema.UrgencyEmergency,
		}).
		Return(&schema.Question{
			ID:      "question-1",
			Urgency: schema.UrgencyEmergency,
			Status:  schema.QuestionUrgent,
		}, nil).
		Times(1)

	body := `{"question":"Is the Annapurna Circuit open in July?","urgency":"emergency"}`
	req := httptest.NewRequest("POST", "/api/help/ask", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Question schema.Question `json:"question"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.QuestionUrgent, jResp.Question.Status)
}

func TestAskQuestionMissingText(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTravelCore(ctl)
	provider := mocks.NewMockProvider(ctl)
	s := Server{store: core, identity: provider}

	provider.EXPECT().VerifyToken(gomock.Any()).Return(&identity.User{ID: "user-1"}, nil).Times(1)

	req := httptest.NewRequest("POST", "/api/help/ask", strings.NewReader(`{"location":"Pokhara"}`))
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestListQuestions(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTravelCore(ctl)
	s := Server{store: core, identity: mocks.NewMockProvider(ctl)}

	questions := []schema.EnrichedQuestion{
		{
			Question:  schema.Question{ID: "question-1", Status: schema.QuestionOpen},
			Responses: []schema.EnrichedResponse{},
			User:      &schema.AskerSummary{Name: "Asha", Nationality: "Nepal"},
		},
	}
	core.EXPECT().ListQuestions("unanswered", 1, 10).Return(questions, 1, nil).Times(1)

	req := httptest.NewRequest("GET", "/api/help/questions?status=unanswered", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Questions []schema.EnrichedQuestion `json:"questions"`
		Total     int                       `json:"total"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Questions, 1)
	assert.Equal(t, 1, jResp.Total)
}

func TestAnswerQuestion(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTravelCore(ctl)
	provider := mocks.NewMockProvider(ctl)
	s := Server{store: core, identity: provider}

	provider.EXPECT().VerifyToken(gomock.Any()).Return(&identity.User{ID: "guide-1"}, nil).Times(1)
	core.EXPECT().
		AnswerQuestion("question-1", "guide-1", "Yes, but expect monsoon rain.").
		Return(&schema.Response{ID: "response-1", ResponderID: "guide-1", Helpful: 0}, nil).
		Times(1)

	body := `{"response":"Yes, but expect monsoon rain."}`
	req := httptest.NewRequest("POST", "/api/help/answer/question-1", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Response schema.Response `json:"response"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "guide-1", jResp.Response.ResponderID)
}

func TestAnswerQuestionNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockTravelCore(ctl)
	provider := mocks.NewMockProvider(ctl)
	s := Server{store: core, identity: provider}

	provider.EXPECT().VerifyToken(gomock.Any()).Return(&identity.User{ID: "guide-1"}, nil).Times(1)
	core.EXPECT().
		AnswerQuestion("missing", "guide-1", gomock.Any()).
		Return(nil, store.ErrQuestionNotFound).
		Times(1)

	req := httptest.NewRequest("POST", "/api/help/answer/missing", strings.NewReader(`{"response":"hello"}`))
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
