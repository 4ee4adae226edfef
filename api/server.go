package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/RijanKanxo/travel-App/external/identity"
	"github.com/RijanKanxo/travel-App/logmodule"
	"github.com/RijanKanxo/travel-App/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.TravelCore

	// External identity provider
	identity identity.Provider
}

// NewServer new instance of server
func NewServer(travelStore store.TravelCore, identityProvider identity.Provider) *Server {
	return &Server{
		store:    travelStore,
		identity: identityProvider,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.GET("/health", s.health)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/signup", s.signup)
		authRoute.POST("/login", s.login)
	}

	// auth routes other than signup/login require a bearer token
	authRoute.Use(s.authMiddleware())
	{
		authRoute.GET("/profile", s.profileDetail)
		authRoute.PUT("/profile", s.profileUpdate)
	}

	journalRoute := apiRoute.Group("/journal")
	{
		journalRoute.GET("/list", s.listJournalEntries)
	}

	journalRoute.Use(s.authMiddleware())
	{
		journalRoute.POST("/create", s.createJournalEntry)
		journalRoute.POST("/:id/like", s.likeJournalEntry)
	}

	marketplaceRoute := apiRoute.Group("/marketplace")
	{
		marketplaceRoute.GET("/list", s.listServices)
	}

	marketplaceRoute.Use(s.authMiddleware())
	{
		marketplaceRoute.POST("/create", s.createService)
	}

	helpRoute := apiRoute.Group("/help")
	{
		helpRoute.GET("/questions", s.listQuestions)
	}

	helpRoute.Use(s.authMiddleware())
	{
		helpRoute.POST("/ask", s.askQuestion)
		helpRoute.POST("/answer/:id", s.answerQuestion)
	}

	alertRoute := apiRoute.Group("/alerts")
	{
		alertRoute.GET("/list", s.listAlerts)
	}

	alertRoute.Use(s.authMiddleware())
	{
		alertRoute.POST("/create", s.createAlert)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

// health is the public liveness endpoint.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "Nepal Travel Platform API is running",
	})
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

// intQuery parses a positive integer query parameter, falling back to the
// default on absence or garbage.
func intQuery(c *gin.Context, name string, defaultValue int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return defaultValue
	}
	return v
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
