package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"itg.uk/invoicegen/core"
	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/session"
	"itg.uk/invoicegen/sheet"
	web "itg.uk/invoicegen/web/common"
)

// ProcessProduction ingests one or more production line exports: combine,
// dedupe on Brief Ref, annotate pre-production lines, and rebuild the Print
// and Studio tables on the session. Re-running replaces both tables.
func (ep *Endpoint) ProcessProduction(c *gin.Context) {
	if _, ok := ep.loadSession(c); !ok {
		return
	}

	if err := c.Request.ParseMultipartForm(ep.Cfg.MaxUploadMB << 20); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	files := c.Request.MultipartForm.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("At least one production file is required"))
		return
	}

	tables := make([][]model.LineItem, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		items, err := sheet.ReadProductionBook(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(fmt.Sprintf("%s: %v", file.Filename, err)))
			return
		}
		tables = append(tables, items)
	}

	combined := core.CombineLineItems(tables...)
	annotated := core.AnnotateProduction(combined)
	studio := core.AggregateStudio(annotated)

	state, err := ep.Store.Update(c.Param("id"), func(state *session.State) error {
		state.Print = annotated
		state.Studio = studio
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	fmt.Printf("[INFO] session %s: %d production rows from %d file(s), %d studio jobs\n",
		state.ID, len(annotated), len(files), len(studio))

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"printLines": len(state.Print),
		"studioJobs": len(state.Studio),
	}))
}
