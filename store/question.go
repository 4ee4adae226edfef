package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/RijanKanxo/travel-App/schema"
)

var ErrQuestionNotFound = fmt.Errorf("question not found")

// QuestionParams carries the caller-supplied fields of a new question.
type QuestionParams struct {
	Question string
	Location string
	Category string
	Urgency  string
}

type Question interface {
	CreateQuestion(userID string, params QuestionParams) (*schema.Question, error)
	ListQuestions(status string, page, limit int) ([]schema.EnrichedQuestion, int, error)
	AnswerQuestion(questionID, responderID, response string) (*schema.Response, error)
}

// CreateQuestion persists a new question and prepends its id to the global
// question index. An emergency question starts in the "urgent" status.
func (s *TravelStore) CreateQuestion(userID string, params QuestionParams) (*schema.Question, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if params.Category == "" {
		params.Category = "general"
	}
	if params.Urgency == "" {
		params.Urgency = schema.UrgencyMedium
	}
	status := schema.QuestionOpen
	if params.Urgency == schema.UrgencyEmergency {
		status = schema.QuestionUrgent
	}

	now := time.Now().UTC()
	question := schema.Question{
		ID:        uuid.New().String(),
		UserID:    userID,
		Question:  params.Question,
		Location:  params.Location,
		Category:  params.Category,
		Urgency:   params.Urgency,
		Status:    status,
		Responses: []schema.Response{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.kv.Set(ctx, questionKeyPrefix+question.ID, question); err != nil {
		return nil, err
	}

	allQuestions := []string{}
	if err := s.kv.Get(ctx, allQuestionsKey, &allQuestions); err != nil && err != ErrKeyNotFound {
		return nil, err
	}
	allQuestions = append([]string{question.ID}, allQuestions...)
	if err := s.kv.Set(ctx, allQuestionsKey, allQuestions); err != nil {
		return nil, err
	}

	return &question, nil
}

// ListQuestions walks the global index, filters by status, sorts by urgency
// rank then recency, paginates and joins askers and responders with their
// profiles. Index entries whose question record is gone are skipped.
//
// Two statuses are derived rather than stored: "unanswered" selects
// questions with no responses, "urgent" selects emergency urgency or the
// urgent status.
func (s *TravelStore) ListQuestions(status string, page, limit int) ([]schema.EnrichedQuestion, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	questionIDs := []string{}
	if err := s.kv.Get(ctx, allQuestionsKey, &questionIDs); err != nil && err != ErrKeyNotFound {
		return nil, 0, err
	}

	questions := make([]schema.Question, 0, len(questionIDs))
	for _, id := range questionIDs {
		var question schema.Question
		if err := s.kv.Get(ctx, questionKeyPrefix+id, &question); err != nil {
			if err == ErrKeyNotFound {
				continue
			}
			return nil, 0, err
		}
		if !questionMatchesStatus(question, status) {
			continue
		}
		questions = append(questions, question)
	}

	sort.Slice(questions, func(i, j int) bool {
		ri, rj := schema.UrgencyRank[questions[i].Urgency], schema.UrgencyRank[questions[j].Urgency]
		if ri != rj {
			return ri > rj
		}
		return questions[i].CreatedAt.After(questions[j].CreatedAt)
	})

	total := len(questions)
	start, end := pageBounds(total, page, limit)
	pageQuestions := questions[start:end]

	enriched := make([]schema.EnrichedQuestion, 0, len(pageQuestions))
	for _, question := range pageQuestions {
		e := schema.EnrichedQuestion{Question: question}

		profile, err := s.GetProfile(question.UserID)
		switch err {
		case nil:
			e.User = &schema.AskerSummary{
				Name:        profile.Name,
				Nationality: profile.Location,
			}
		case ErrProfileNotFound:
		default:
			return nil, 0, err
		}

		e.Responses = make([]schema.EnrichedResponse, 0, len(question.Responses))
		for _, response := range question.Responses {
			er := schema.EnrichedResponse{Response: response}
			responder, err := s.GetProfile(response.ResponderID)
			switch err {
			case nil:
				er.Responder = &schema.ResponderSummary{
					Name:     responder.Name,
					Verified: responder.Verified,
					UserType: responder.UserType,
					Rating:   responder.Rating,
				}
			case ErrProfileNotFound:
			default:
				return nil, 0, err
			}
			e.Responses = append(e.Responses, er)
		}

		enriched = append(enriched, e)
	}

	return enriched, total, nil
}

// AnswerQuestion appends a response to a question and marks it answered.
// The read-modify-write is not atomic; concurrent answers may race.
func (s *TravelStore) AnswerQuestion(questionID, responderID, response string) (*schema.Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var question schema.Question
	if err := s.kv.Get(ctx, questionKeyPrefix+questionID, &question); err != nil {
		if err == ErrKeyNotFound {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	answer := schema.Response{
		ID:          uuid.New().String(),
		ResponderID: responderID,
		Response:    response,
		Helpful:     0,
		CreatedAt:   now,
	}

	question.Responses = append(question.Responses, answer)
	question.Status = schema.QuestionAnswered
	question.UpdatedAt = now

	if err := s.kv.Set(ctx, questionKeyPrefix+questionID, question); err != nil {
		return nil, err
	}

	return &answer, nil
}

func questionMatchesStatus(question schema.Question, status string) bool {
	switch status {
	case "", "all":
		return true
	case "unanswered":
		return len(question.Responses) == 0
	case schema.QuestionUrgent:
		return question.Urgency == schema.UrgencyEmergency || question.Status == schema.QuestionUrgent
	default:
		return question.Status == status
	}
}
