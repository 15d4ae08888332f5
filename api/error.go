package api

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorResponse{1000, "internal server error"}
	errorInvalidParameters  = errorResponse{1001, "invalid parameters"}
	errorCannotParseRequest = errorResponse{1002, "can not parse request"}
	errorUnauthorized       = errorResponse{1003, "request is not authorized"}

	errorAccountTaken    = errorResponse{1100, "account number is already registered"}
	errorProfileNotFound = errorResponse{1101, "profile not found"}

	errorActivityNotFound = errorResponse{1200, "activity not found"}
)

// abortWithEncoding aborts the request with the given error response and
// logs the underlying errors.
func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		log.WithField("prefix", "api").WithError(err).Error(resp.Message)
	}

	c.AbortWithStatusJSON(code, gin.H{"error": resp})
}
