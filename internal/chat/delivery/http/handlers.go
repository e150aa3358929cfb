package http

import (
	"github.com/gin-gonic/gin"

	"study-companion/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Forwards the message to the scheduler agent. The reply kind
// @Description tells the client how to render it: chat, timetable, or unparsed.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-Email header string  true "User identity"
// @Param       body         body   sendReq true "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Agent backend unavailable"
// @Router      /api/v1/chat [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Send(ctx, req.scope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSendResp(output))
}

// Solve godoc
// @Summary     Solve a homework question
// @Description Sends the question to the tutor agent and returns its answer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-Email header string   true "User identity"
// @Param       body         body   solveReq true "Question"
// @Success     200 {object} solveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Agent backend unavailable"
// @Router      /api/v1/chat/solve [POST]
func (h *handler) Solve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Solve(ctx, req.scope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Solve: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSolveResp(output))
}

// History godoc
// @Summary     Conversation history
// @Description Returns the user's recent scheduler conversation, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       X-User-Email header string true "User identity"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newHistoryResp(output))
}
