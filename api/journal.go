package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RijanKanxo/travel-App/store"
)

// createJournalEntry is the API for posting a new journal entry
func (s *Server) createJournalEntry(c *gin.Context) {
	userID := c.GetString("userID")

	var params struct {
		Title        string   `json:"title"`
		Content      string   `json:"content"`
		Location     string   `json:"location"`
		Tags         []string `json:"tags"`
		Images       []string `json:"images"`
		SafetyRating int      `json:"safety_rating"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || params.Content == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorTitleContentRequired)
		return
	}

	entry, err := s.store.CreateJournalEntry(userID, store.JournalEntryParams{
		Title:        params.Title,
		Content:      params.Content,
		Location:     params.Location,
		Tags:         params.Tags,
		Images:       params.Images,
		SafetyRating: params.SafetyRating,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Journal entry created successfully",
		"entry":   entry,
	})
}

// listJournalEntries is the public API for browsing journal entries
func (s *Server) listJournalEntries(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	category := c.DefaultQuery("category", "all")

	entries, total, err := s.store.ListJournalEntries(page, limit, category)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// likeJournalEntry is the API toggling the caller's like on an entry
func (s *Server) likeJournalEntry(c *gin.Context) {
	userID := c.GetString("userID")
	entryID := c.Param("id")

	likes, liked, err := s.store.ToggleJournalLike(userID, entryID)
	if err != nil {
		if err == store.ErrJournalEntryNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorEntryNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"likes": likes,
		"liked": liked,
	})
}
