package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-companion/internal/model"
)

const headerUserEmail = "X-User-Email"

var errMissingUser = errors.New("X-User-Email header is required")

func scopeFromRequest(c *gin.Context) (model.Scope, error) {
	email := c.GetHeader(headerUserEmail)
	if email == "" {
		return model.Scope{}, errMissingUser
	}
	return model.Scope{UserEmail: email}, nil
}

// processSendReq binds and validates the send message request body.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq

	sc, err := scopeFromRequest(c)
	if err != nil {
		return req, err
	}
	req.scope = sc

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSolveReq binds and validates the solve question request body.
func (h *handler) processSolveReq(c *gin.Context) (solveReq, error) {
	var req solveReq

	sc, err := scopeFromRequest(c)
	if err != nil {
		return req, err
	}
	req.scope = sc

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
