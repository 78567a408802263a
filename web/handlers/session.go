package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"itg.uk/invoicegen/core"
	"itg.uk/invoicegen/session"
	web "itg.uk/invoicegen/web/common"
)

func (ep *Endpoint) CreateSession(c *gin.Context) {
	state, err := ep.Store.Create()
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(state))
}

// SessionSummaryDTO is the session overview returned to the UI: the stored
// state plus the derived event code and timesheet match summary.
type SessionSummaryDTO struct {
	*session.State
	EventCode    string            `json:"eventCode"`
	MatchSummary core.MatchSummary `json:"matchSummary"`
}

func (ep *Endpoint) GetSession(c *gin.Context) {
	state, ok := ep.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(SessionSummaryDTO{
		State:        state,
		EventCode:    core.EventCode(state.EventName),
		MatchSummary: core.SummarizeMatch(state.Studio),
	}))
}

type SetEventDTO struct {
	EventName string `json:"eventName" binding:"required"`
}

func (ep *Endpoint) SetEvent(c *gin.Context) {
	var dto SetEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	_, err := ep.Store.Update(c.Param("id"), func(state *session.State) error {
		state.EventName = dto.EventName
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

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"eventName": dto.EventName,
		"eventCode": core.EventCode(dto.EventName),
	}))
}
