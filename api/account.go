package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/JN-EPHEC/discovery-api/geo"
	"github.com/JN-EPHEC/discovery-api/schema"
	"github.com/JN-EPHEC/discovery-api/store"
)

// accountRegister is the API for registering a new account profile
func (s *Server) accountRegister(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Interests []string               `json:"interests"`
		City      string                 `json:"city"`
		Metadata  map[string]interface{} `json:"metadata"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if _, err := s.mongoStore.CreateProfile(accountNumber, params.Interests, params.Metadata); err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if params.City != "" {
		if err := s.mongoStore.UpdateProfileCity(accountNumber, params.City, resolveCityLocation(params.City)); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result": "OK",
	})
}

// accountDetail is the API to query the requester profile
func (s *Server) accountDetail(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": map[string]interface{}{
			"id":             profile.ID,
			"account_number": profile.AccountNumber,
			"interests":      profile.Interests,
			"city":           profile.City,
			"metadata":       profile.Metadata,
		},
	})
}

// accountUpdate is the API to update interests or city for a user. A
// changed city is re-geocoded through the configured geocoder.
func (s *Server) accountUpdate(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Interests *[]string `json:"interests"`
		City      *string   `json:"city"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Interests != nil {
		if err := s.mongoStore.UpdateProfileInterests(accountNumber, *params.Interests); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	if params.City != nil {
		var location *schema.Location
		if *params.City != "" {
			location = resolveCityLocation(*params.City)
		}
		if err := s.mongoStore.UpdateProfileCity(accountNumber, *params.City, location); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountDelete is the API to remove an account profile from our service
func (s *Server) accountDelete(c *gin.Context) {
	accountNumber := c.GetString("requester")

	if err := s.mongoStore.DeleteProfile(accountNumber); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// resolveCityLocation geocodes a declared city. An unresolvable city is
// not an error for profile updates; the profile simply keeps no
// coordinate and scoring falls back to the neutral distance score.
func resolveCityLocation(city string) *schema.Location {
	location, err := geo.LookupCoordinate(city)
	if err != nil {
		log.WithField("prefix", "api").WithField("city", city).WithError(err).Warn("fail to resolve city coordinate")
		return nil
	}

	return &location
}
