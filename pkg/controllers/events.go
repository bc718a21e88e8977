package controllers

import (
	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterEventRoutes(r *gin.RouterGroup) {
	if co.Events == nil {
		return
	}

	r.OPTIONS("", co.OptionsEvents)
	r.GET("", co.GetEvents)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events [options]
func (co Controller) OptionsEvents(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Transaction events
// @Description	Upgrades to a websocket connection that receives every transaction as it is recorded
// @Tags			Events
// @Success		101
// @Router			/v1/events [get]
func (co Controller) GetEvents(c *gin.Context) {
	co.Events.ServeHTTP(c.Writer, c.Request)
}
