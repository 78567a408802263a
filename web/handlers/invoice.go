package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"itg.uk/invoicegen/core"
	"itg.uk/invoicegen/session"
	"itg.uk/invoicegen/sheet"
	web "itg.uk/invoicegen/web/common"
)

// GenerateInvoice renders the populated workbook from the session's template
// and tables. Re-running replaces the previous output file reference.
func (ep *Endpoint) GenerateInvoice(c *gin.Context) {
	state, ok := ep.loadSession(c)
	if !ok {
		return
	}

	if state.Template == nil {
		c.JSON(http.StatusConflict, web.NewErrorResponse("Upload an invoice template first"))
		return
	}
	if len(state.Studio) == 0 && len(state.Print) == 0 {
		c.JSON(http.StatusConflict, web.NewErrorResponse("Process production files first"))
		return
	}

	generated, err := sheet.GenerateInvoice(
		state.Template, state.Studio, state.Print,
		state.EventName, core.EventCode(state.EventName), ep.Cfg.OutputDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	state, err = ep.Store.Update(c.Param("id"), func(state *session.State) error {
		state.Generated = generated
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	fmt.Printf("[INFO] session %s: generated %s\n", state.ID, generated.Filename)

	c.JSON(http.StatusOK, web.NewSuccessResponse(state.Generated))
}

// DownloadInvoice streams the most recently generated workbook.
func (ep *Endpoint) DownloadInvoice(c *gin.Context) {
	state, ok := ep.loadSession(c)
	if !ok {
		return
	}

	if state.Generated == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("No invoice has been generated for this session"))
		return
	}

	c.Header("Content-Type", state.Generated.MIMEType)
	c.FileAttachment(state.Generated.Path, state.Generated.Filename)
}
