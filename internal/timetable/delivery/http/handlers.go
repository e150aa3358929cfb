package http

import (
	"github.com/gin-gonic/gin"

	"study-companion/pkg/response"
)

// Show godoc
// @Summary     Show the timetable
// @Description Fetches the user's timetable from the scheduler agent and parses
// @Description it into schedule blocks. Unparseable replies come back as raw text.
// @Tags        Timetable
// @Produce     json
// @Param       X-User-Email header string true "User identity"
// @Success     200 {object} showResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Agent backend unavailable"
// @Router      /api/v1/timetable [GET]
func (h *handler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Show(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Show: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newShowResp(output))
}

// Remove godoc
// @Summary     Remove a schedule block
// @Description Removes a block by its server ID and returns the refreshed
// @Description timetable. Synthetic (auto_N) IDs are rejected: the backend has
// @Description no record of them.
// @Tags        Timetable
// @Produce     json
// @Param       X-User-Email header string true "User identity"
// @Param       id path string true "Block ID"
// @Success     200 {object} showResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Block not addressable"
// @Failure     502 {object} response.Resp "Agent backend unavailable"
// @Router      /api/v1/timetable/blocks/{id} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Remove(ctx, req.scope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newShowResp(output))
}

// Export godoc
// @Summary     Export the timetable to Google Calendar
// @Description Creates a calendar event for every block whose time label is a
// @Description clock range. Blocks with free-form time text are skipped.
// @Tags        Timetable
// @Accept      json
// @Produce     json
// @Param       X-User-Email header string    true  "User identity"
// @Param       body         body   exportReq false "Export options"
// @Success     200 {object} exportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Nothing to export"
// @Failure     502 {object} response.Resp "Agent backend unavailable"
// @Router      /api/v1/timetable/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, req.scope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newExportResp(output))
}
