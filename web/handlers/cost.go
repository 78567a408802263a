package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"itg.uk/invoicegen/core"
	web "itg.uk/invoicegen/web/common"
)

// CostPreview computes the layered cost totals from the session's current
// tables. Dirty or incomplete data still produces a preview.
func (ep *Endpoint) CostPreview(c *gin.Context) {
	state, ok := ep.loadSession(c)
	if !ok {
		return
	}
	if len(state.Studio) == 0 && len(state.Print) == 0 {
		c.JSON(http.StatusConflict, web.NewErrorResponse("Process production files first"))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(core.ComputeCosts(state.Studio, state.Print)))
}
