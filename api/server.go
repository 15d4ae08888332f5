package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JN-EPHEC/discovery-api/schema"
	"github.com/JN-EPHEC/discovery-api/store"
)

// Server serves the activity discovery API.
type Server struct {
	router     *gin.Engine
	mongoStore store.MongoStore
	traceMode  bool
}

func NewServer(mongoStore store.MongoStore, traceMode bool) *Server {
	return &Server{
		mongoStore: mongoStore,
		traceMode:  traceMode,
	}
}

// Run starts the API server on the given address.
func (s *Server) Run(addr string) error {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	apiRoute := r.Group("/api")

	accounts := apiRoute.Group("/accounts")
	accounts.Use(s.recognizeAccount)
	{
		accounts.POST("", s.accountRegister)

		me := accounts.Group("/me")
		me.Use(s.loadProfile)
		{
			me.GET("", s.accountDetail)
			me.PATCH("", s.accountUpdate)
			me.DELETE("", s.accountDelete)
		}
	}

	activities := apiRoute.Group("/activities")
	{
		activities.GET("", s.listActivities)
		activities.GET("/nearby", s.nearbyActivities)
		activities.POST("", s.addActivity)
		activities.POST("/:activityID/ratings", s.recognizeAccount, s.updateActivityRating)
	}

	apiRoute.GET("/suggestions", s.listSuggestedGames)

	recommendations := apiRoute.Group("/recommendations")
	recommendations.Use(s.recognizeAccount, s.loadProfile)
	recommendations.GET("", s.listRecommendations)

	r.GET("/healthz", s.healthz)

	s.router = r
	return r.Run(addr)
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// recognizeAccount assumes an upstream identity provider has already
// authenticated the request and reads the verified account number from
// the request header.
func (s *Server) recognizeAccount(c *gin.Context) {
	accountNumber := c.GetHeader("X-Account-Number")
	if accountNumber == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorUnauthorized)
		return
	}

	c.Set("requester", accountNumber)
	c.Next()
}

// loadProfile fetches the requester profile into the request context.
func (s *Server) loadProfile(c *gin.Context) {
	accountNumber := c.GetString("requester")

	profile, err := s.mongoStore.GetProfileByAccountNumber(accountNumber)
	if err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.Set("account", profile)
	c.Next()
}

func currentProfile(c *gin.Context) (*schema.Profile, bool) {
	profile, ok := c.MustGet("account").(*schema.Profile)
	return profile, ok
}
