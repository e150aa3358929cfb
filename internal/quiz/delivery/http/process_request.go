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

// processGenerateReq binds the optional generate request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq

	sc, err := scopeFromRequest(c)
	if err != nil {
		return req, err
	}
	req.scope = sc

	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, req.validate()
}

// processSubmitReq binds and validates the submit answers request body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq

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
