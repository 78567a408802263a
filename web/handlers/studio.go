package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"itg.uk/invoicegen/core"
	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/session"
	"itg.uk/invoicegen/utils"
	web "itg.uk/invoicegen/web/common"
)

// StudioJobUpdateDTO carries a manual edit to one studio job. Only provided
// fields change.
type StudioJobUpdateDTO struct {
	StudioHours *float64 `json:"studioHours,omitempty" binding:"omitempty,min=0,max=1000"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=Artwork 'Creative Artwork' Digital"`
	CoreOAB     *string  `json:"coreOab,omitempty" binding:"omitempty,oneof=CORE OAB"`
}

func (ep *Endpoint) UpdateStudioJob(c *gin.Context) {
	var dto StudioJobUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ref := c.Param("ref")
	found := false
	state, err := ep.Store.Update(c.Param("id"), func(state *session.State) error {
		for i := range state.Studio {
			if state.Studio[i].ProjectRef != ref {
				continue
			}
			found = true
			if dto.StudioHours != nil {
				rounded := core.RoundUpToQuarter(*dto.StudioHours)
				state.Studio[i].StudioHours = &rounded
			}
			if dto.Type != nil {
				state.Studio[i].Type = *dto.Type
			}
			if dto.CoreOAB != nil {
				state.Studio[i].CoreOAB = *dto.CoreOAB
			}
			break
		}
		return nil
	})
	if err == session.ErrNotFound {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Session not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Unknown project ref"))
		return
	}

	job := utils.Find(state.Studio, func(j model.StudioJob) bool { return j.ProjectRef == ref })
	c.JSON(http.StatusOK, web.NewSuccessResponse(job))
}
