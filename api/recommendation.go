package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JN-EPHEC/discovery-api/score"
)

// listRecommendations returns the activities ranked for the requester,
// best match first. The candidate set is scored fresh on every request;
// an empty activity collection yields an empty list.
func (s *Server) listRecommendations(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	activities, err := s.mongoStore.ListActivities()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	ranked := score.RankActivities(*profile, activities)

	c.JSON(http.StatusOK, gin.H{"recommendations": ranked})
}
