package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RijanKanxo/travel-App/store"
)

// createService is the API for publishing a service listing
func (s *Server) createService(c *gin.Context) {
	providerID := c.GetString("userID")

	var params struct {
		Title          string   `json:"title"`
		Description    string   `json:"description"`
		Category       string   `json:"category"`
		Price          float64  `json:"price"`
		Duration       string   `json:"duration"`
		MaxPeople      int      `json:"max_people"`
		Location       string   `json:"location"`
		Images         []string `json:"images"`
		Specialties    []string `json:"specialties"`
		SafetyFeatures []string `json:"safety_features"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || params.Description == "" || params.Category == "" || params.Price == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorRequiredFieldMissing)
		return
	}

	service, err := s.store.CreateService(providerID, store.ServiceParams{
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
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service listing created successfully",
		"service": service,
	})
}

// listServices is the public API for browsing the marketplace
func (s *Server) listServices(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	location := c.Query("location")
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 12)

	services, total, err := s.store.ListServices(page, limit, category, location)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}
