package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"itg.uk/invoicegen/config"
	"itg.uk/invoicegen/session"
	web "itg.uk/invoicegen/web/common"
)

type Endpoint struct {
	Store *session.Store
	Cfg   config.Configuration
}

func Register(r *gin.RouterGroup, ep *Endpoint) {
	r.POST("/sessions", ep.CreateSession)
	r.GET("/sessions/:id", ep.GetSession)
	r.PUT("/sessions/:id/event", ep.SetEvent)

	r.POST("/sessions/:id/template", ep.UploadTemplate)
	r.POST("/sessions/:id/production", ep.ProcessProduction)
	r.POST("/sessions/:id/timesheet", ep.ProcessTimesheet)

	r.PUT("/sessions/:id/studio/:ref", ep.UpdateStudioJob)
	r.GET("/sessions/:id/costs", ep.CostPreview)

	r.POST("/sessions/:id/invoice", ep.GenerateInvoice)
	r.GET("/sessions/:id/invoice", ep.DownloadInvoice)
	r.GET("/sessions/:id/export/studio", ep.ExportStudioCSV)
	r.GET("/sessions/:id/export/print", ep.ExportPrintCSV)
}

// loadSession resolves the :id path parameter, writing the error response
// itself when the session is unknown.
func (ep *Endpoint) loadSession(c *gin.Context) (*session.State, bool) {
	state, err := ep.Store.Get(c.Param("id"))
	if err == session.ErrNotFound {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Session not found"))
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return nil, false
	}
	return state, true
}
