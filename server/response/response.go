package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	errs "github.com/campustech/marketplace/errors"
)

// JSON writes the standard response envelope.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	var errMessage interface{}
	if err != nil {
		errMessage = err.Error()
	}

	responsedata := gin.H{
		"message":   message,
		"data":      data,
		"errors":    errMessage,
		"status":    http.StatusText(status),
		"timestamp": time.Now().Format("2006-01-02 15:04:05"),
	}

	c.JSON(status, responsedata)
}

// HandleErrors responds with the status carried by a typed *errs.Error and
// falls back to a generic internal error for anything unexpected, so raw
// failures are never exposed to the caller.
func HandleErrors(c *gin.Context, err error) {
	if e, ok := err.(*errs.Error); ok {
		JSON(c, "", e.Status, nil, e)
		return
	}
	JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
}
