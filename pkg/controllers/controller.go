// Package controllers contains the HTTP handlers for the ledger API.
package controllers

import (
	"fmt"
	"net/http"

	"github.com/envelope-zero/ledger/internal/httperror"
	"github.com/envelope-zero/ledger/pkg/events"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Controller holds everything the handlers need.
//
// Events is optional. Without it, the events endpoint is not registered.
type Controller struct {
	Ledger *ledger.Ledger
	Events *events.Hub
}

// respondError writes the error with the matching HTTP status.
//
// Storage errors are logged and not shown to the client.
func respondError(c *gin.Context, err error) {
	status := httperror.Status(err)

	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = fmt.Errorf("a storage error occurred during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c))
	}

	c.AbortWithStatusJSON(status, httperror.New(err))
}
