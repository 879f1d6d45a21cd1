package httperr

import (
	"breakfast-deals/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes {"error":{"message":msg}} and records err on the
// context for the logging middleware. A nil err is replaced by msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Record(c, status, err, msg, detail)
	c.AbortWithStatusJSON(status, resp)
}

// Record attaches err to the context as a public error whose Meta is the
// response body. Nothing is written; middleware.ErrorHandler renders it when
// the handler leaves the body empty.
func Record(c *gin.Context, status int, err error, msg string, detail any) Response {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	return resp
}
