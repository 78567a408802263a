package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"itg.uk/invoicegen/core"
	"itg.uk/invoicegen/sheet"
	web "itg.uk/invoicegen/web/common"
)

// ExportStudioCSV downloads the session's studio table as CSV.
func (ep *Endpoint) ExportStudioCSV(c *gin.Context) {
	state, ok := ep.loadSession(c)
	if !ok {
		return
	}
	if len(state.Studio) == 0 {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("No studio data to export"))
		return
	}

	var buf bytes.Buffer
	if err := sheet.WriteStudioCSV(&buf, state.Studio); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	sendCSV(c, sheet.StudioCSVName(core.EventCode(state.EventName)), buf.Bytes())
}

// ExportPrintCSV downloads the session's print table as CSV.
func (ep *Endpoint) ExportPrintCSV(c *gin.Context) {
	state, ok := ep.loadSession(c)
	if !ok {
		return
	}
	if len(state.Print) == 0 {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("No print data to export"))
		return
	}

	var buf bytes.Buffer
	if err := sheet.WritePrintCSV(&buf, state.Print); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	sendCSV(c, sheet.PrintCSVName(core.EventCode(state.EventName)), buf.Bytes())
}

func sendCSV(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", body)
}
