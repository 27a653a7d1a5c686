package handlers

import (
	"errors"
	"net/http"

	"heating_leads/internal/apperr"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// writeError maps err to a status and JSON body. Internal errors are logged
// under logKey and their message is not exposed.
func (h *Handler) writeError(c *gin.Context, err error, logKey string, extra gin.H) {
	status := http.StatusInternalServerError
	var ae *apperr.Error
	if errors.As(err, &ae) {
		status = ae.HTTPStatus()
	}

	resp := gin.H{}
	for k, v := range extra {
		resp[k] = v
	}
	if status >= http.StatusInternalServerError {
		h.log.Errorw(logKey, "err", err)
		resp["error"] = errInternal
	} else {
		resp["error"] = err.Error()
		if fields := apperr.FieldsOf(err); len(fields) > 0 {
			resp["details"] = fields
		}
	}
	c.JSON(status, resp)
}
