package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JN-EPHEC/discovery-api/store"
)

// listSuggestedGames is an API handler for the party game suggestion
// catalog
func (s *Server) listSuggestedGames(c *gin.Context) {
	var params struct {
		Featured bool   `form:"featured"`
		Language string `form:"lang"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	lang := "en"
	if params.Language != "" {
		lang = params.Language
	}

	games, err := store.ListPartyGames(lang, params.Featured)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games})
}
