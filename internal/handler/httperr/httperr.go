// Package httperr defines the envelope the error middleware renders when
// a handler pushes a structured failure through gin's error chain.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of a handled failure. Status travels on the
// struct for the middleware but never serializes.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records the original error on the context, where the
// logging middleware picks it up, and aborts with the rendered envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
