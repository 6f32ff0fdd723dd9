package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "pomoflow/pkg/errors"
)

var errMissingID = pkgErrors.NewHTTPError(400, "task id is required")

// processParseReq binds the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update request body plus URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
