package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/shop-api/internal/apperr"
)

// ErrorBody is the payload of every failed request.
// swagger:model ErrorBody
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Status  int    `json:"status" example:"404"`
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"order not found"`
	Field   string `json:"field,omitempty"`
}

// Fail records err for the Errors middleware and stops the chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Errors renders the last error of the request. Internal errors are logged
// with their cause and rendered with a generic message.
func Errors(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		ae := apperr.From(classifyBinding(err))
		if ae.Kind == apperr.KindInternal {
			log.Error("request failed",
				zap.String("rid", RID(c)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			ae = apperr.Internal("internal server error", nil)
		}
		c.JSON(ae.Status(), ErrorBody{Error: ErrorDetail{
			Status:  ae.Status(),
			Code:    ae.Code(),
			Message: ae.Message,
			Field:   ae.Field,
		}})
	}
}

// bindError marks failures of gin binding so they render as validation errors.
type bindError struct{ err error }

func (b bindError) Error() string { return b.err.Error() }
func (b bindError) Unwrap() error { return b.err }

// Bind decodes the JSON body into dst; failures are validation errors.
func Bind(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return bindError{err: err}
	}
	return nil
}

func classifyBinding(err error) error {
	var be bindError
	if errors.As(err, &be) {
		return apperr.Validation("", be.err.Error())
	}
	return err
}

// NoRoute renders unknown paths with the standard error body.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: ErrorDetail{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "route not found",
	}})
}
