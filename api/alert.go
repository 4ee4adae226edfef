package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RijanKanxo/travel-App/store"
)

// listAlerts is the public API for browsing active alerts. Expired alerts
// are filtered at read time and never returned.
func (s *Server) listAlerts(c *gin.Context) {
	location := c.Query("location")
	alertType := c.DefaultQuery("type", "all")

	alerts, err := s.store.ListAlerts(location, alertType)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
	})
}

// createAlert is the API for publishing an alert. Only verified users and
// local authorities may create alerts.
func (s *Server) createAlert(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := s.store.GetProfile(userID)
	if err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusForbidden, errorAlertNotAuthorized)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if !profile.CanCreateAlerts() {
		abortWithEncoding(c, http.StatusForbidden, errorAlertNotAuthorized)
		return
	}

	var params struct {
		Type           string `json:"type"`
		Severity       string `json:"severity"`
		Title          string `json:"title"`
		Message        string `json:"message"`
		Location       string `json:"location"`
		ExpiresInHours int    `json:"expires_in_hours"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Type == "" || params.Severity == "" || params.Title == "" || params.Message == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorRequiredFieldMissing)
		return
	}

	alert, err := s.store.CreateAlert(userID, store.AlertParams{
		Type:           params.Type,
		Severity:       params.Severity,
		Title:          params.Title,
		Message:        params.Message,
		Location:       params.Location,
		ExpiresInHours: params.ExpiresInHours,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Alert created successfully",
		"alert":   alert,
	})
}
