package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"itg.uk/invoicegen/session"
	"itg.uk/invoicegen/sheet"
	web "itg.uk/invoicegen/web/common"
)

// UploadTemplate stores the invoice template and records its analysis
// (sheet inventory, macro flag, client lists) on the session.
func (ep *Endpoint) UploadTemplate(c *gin.Context) {
	if _, ok := ep.loadSession(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Template file is required"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".xlsx" && ext != ".xlsm" {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Template must be an .xlsx or .xlsm file"))
		return
	}

	dst := filepath.Join(ep.Cfg.UploadDir, fmt.Sprintf("template_%s%s", uuid.NewString(), ext))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	tpl, err := sheet.LoadTemplate(dst)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	state, err := ep.Store.Update(c.Param("id"), func(state *session.State) error {
		state.Template = tpl
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(state.Template))
}
