package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"itg.uk/invoicegen/core"
	"itg.uk/invoicegen/session"
	"itg.uk/invoicegen/sheet"
	web "itg.uk/invoicegen/web/common"
)

// ProcessTimesheet ingests the timesheet CSV, aggregates chargeable hours
// per project and merges them into the session's studio table. A decode
// failure aborts this stage only; the studio table keeps its prior state.
func (ep *Endpoint) ProcessTimesheet(c *gin.Context) {
	state, ok := ep.loadSession(c)
	if !ok {
		return
	}
	if len(state.Studio) == 0 {
		c.JSON(http.StatusConflict, web.NewErrorResponse("Process production files first"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Timesheet file is required"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	defer src.Close()

	entries, err := sheet.ReadTimesheet(src)
	if err != nil {
		var decodeErr *sheet.DecodeError
		if errors.As(err, &decodeErr) {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(
				"Unable to read the uploaded timesheet. Please upload a CSV encoded as UTF-8 or UTF-16."))
			return
		}
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	hours := core.AggregateTimesheet(entries)
	if len(hours) == 0 {
		c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse("No valid timesheet data found"))
		return
	}

	state, err = ep.Store.Update(c.Param("id"), func(state *session.State) error {
		state.Hours = hours
		state.Studio = core.MergeTimesheet(state.Studio, hours)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(core.SummarizeMatch(state.Studio)))
}
