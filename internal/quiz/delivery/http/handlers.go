package http

import (
	"github.com/gin-gonic/gin"

	"study-companion/pkg/response"
)

// Generate godoc
// @Summary     Generate a quiz
// @Description Asks the quiz agent for a fresh question set, optionally
// @Description scoped to a topic.
// @Tags        Quiz
// @Accept      json
// @Produce     json
// @Param       X-User-Email header string      true  "User identity"
// @Param       body         body   generateReq false "Quiz options"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Agent backend unavailable"
// @Router      /api/v1/quiz [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.scope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newGenerateResp(output))
}

// Submit godoc
// @Summary     Submit quiz answers
// @Description Sends answers to the quiz agent for evaluation and returns the
// @Description session result with updated XP and streak.
// @Tags        Quiz
// @Accept      json
// @Produce     json
// @Param       X-User-Email header string    true "User identity"
// @Param       body         body   submitReq true "Answers"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Agent backend unavailable"
// @Router      /api/v1/quiz/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, req.scope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSubmitResp(output))
}

// Dashboard godoc
// @Summary     Progress dashboard
// @Description Returns the user's level, XP, streaks, and accuracy.
// @Tags        Progress
// @Produce     json
// @Param       X-User-Email header string true "User identity"
// @Success     200 {object} dashboardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Agent backend unavailable"
// @Router      /api/v1/progress/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Dashboard(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newDashboardResp(output))
}

// Badges godoc
// @Summary     Badge collection
// @Description Returns the user's earned and unearned badges.
// @Tags        Progress
// @Produce     json
// @Param       X-User-Email header string true "User identity"
// @Success     200 {object} badgesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Agent backend unavailable"
// @Router      /api/v1/progress/badges [GET]
func (h *handler) Badges(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scopeFromRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Badges(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Badges: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newBadgesResp(output))
}
