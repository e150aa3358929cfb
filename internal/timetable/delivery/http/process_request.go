package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-companion/internal/model"
)

// HeaderUserEmail carries the caller identity. The service trusts the client
// the same way the agent backend does.
const HeaderUserEmail = "X-User-Email"

var errMissingUser = errors.New("X-User-Email header is required")

func scopeFromRequest(c *gin.Context) (model.Scope, error) {
	email := c.GetHeader(HeaderUserEmail)
	if email == "" {
		return model.Scope{}, errMissingUser
	}
	return model.Scope{UserEmail: email}, nil
}

// processRemoveReq binds the remove request URI param.
func (h *handler) processRemoveReq(c *gin.Context) (removeReq, error) {
	var req removeReq

	sc, err := scopeFromRequest(c)
	if err != nil {
		return req, err
	}
	req.scope = sc
	req.BlockID = c.Param("id")
	return req, req.validate()
}

// processExportReq binds the optional export request body.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq

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
