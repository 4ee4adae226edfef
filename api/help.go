package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RijanKanxo/travel-App/store"
)

// askQuestion is the API for asking help from the community
func (s *Server) askQuestion(c *gin.Context) {
	userID := c.GetString("userID")

	var params struct {
		Question string `json:"question"`
		Location string `json:"location"`
		Category string `json:"category"`
		Urgency  string `json:"urgency"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Question == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorQuestionRequired)
		return
	}

	question, err := s.store.CreateQuestion(userID, store.QuestionParams{
		Question: params.Question,
		Location: params.Location,
		Category: params.Category,
		Urgency:  params.Urgency,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Question posted successfully",
		"question": question,
	})
}

// listQuestions is the public API for browsing help questions
func (s *Server) listQuestions(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)

	questions, total, err := s.store.ListQuestions(status, page, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": questions,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

// answerQuestion is the API for answering a question
func (s *Server) answerQuestion(c *gin.Context) {
	userID := c.GetString("userID")
	questionID := c.Param("id")

	var params struct {
		Response string `json:"response"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Response == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorResponseRequired)
		return
	}

	response, err := s.store.AnswerQuestion(questionID, userID, params.Response)
	if err != nil {
		if err == store.ErrQuestionNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorQuestionNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Response added successfully",
		"response": response,
	})
}
