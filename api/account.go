package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RijanKanxo/travel-App/store"
)

// profileDetail is the API to query the caller's profile
func (s *Server) profileDetail(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := s.store.GetProfile(userID)
	if err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
	})
}

// profileUpdate is the API to merge caller-supplied fields into the
// caller's profile
func (s *Server) profileUpdate(c *gin.Context) {
	userID := c.GetString("userID")

	var updates map[string]interface{}
	if err := c.BindJSON(&updates); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	profile, err := s.store.UpdateProfile(userID, updates)
	if err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
	})
}
