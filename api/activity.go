package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JN-EPHEC/discovery-api/schema"
	"github.com/JN-EPHEC/discovery-api/store"
)

// listActivities is an API handler for listing all discoverable activities
func (s *Server) listActivities(c *gin.Context) {
	activities, err := s.mongoStore.ListActivities()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// nearbyActivities returns activities around the position given by the
// Geo-Position header, closest first.
func (s *Server) nearbyActivities(c *gin.Context) {
	lat, long, err := parseGeoPosition(c.GetHeader("Geo-Position"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		Limit int64 `form:"limit"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Limit <= 0 {
		params.Limit = 20
	}

	nearby, err := s.mongoStore.NearbyActivities(schema.Location{Latitude: lat, Longitude: long}, params.Limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": nearby})
}

// addActivity is the API for publishing a new activity
func (s *Server) addActivity(c *gin.Context) {
	var params struct {
		Title       string           `json:"title" binding:"required"`
		Description string           `json:"description"`
		Category    string           `json:"category"`
		Interests   []string         `json:"interests"`
		Price       string           `json:"price" binding:"required,oneof=free paid"`
		Location    *schema.Location `json:"location"`
		IsNew       bool             `json:"is_new"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	activity := schema.Activity{
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Interests:   params.Interests,
		Price:       schema.ActivityPrice(params.Price),
		IsNew:       params.IsNew,
	}
	if params.Location != nil {
		activity.Location = schema.NewGeoJSONPoint(*params.Location)
	}

	added, err := s.mongoStore.AddActivity(activity)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": added})
}

// updateActivityRating is the API for rating an activity with a score
// between 0 and 5
func (s *Server) updateActivityRating(c *gin.Context) {
	activityID, err := primitive.ObjectIDFromHex(c.Param("activityID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid activity ID"))
		return
	}

	var params struct {
		Score float64 `json:"score"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Score < 0 || params.Score > 5 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("rating score out of range"))
		return
	}

	activity, err := s.mongoStore.RateActivity(activityID, params.Score)
	if err != nil {
		if err == store.ErrActivityNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorActivityNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}
