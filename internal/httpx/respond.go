// Package httpx is the single boundary that shapes every failure into the
// service's JSON error envelope. Handlers and middleware respond through it;
// nothing else writes error bodies.
package httpx

import (
	"net/http"

	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order"

	"github.com/gin-gonic/gin"
)

// ErrorBody carries the failure message plus whatever context the failure
// kind defines: field errors for validation, the requested path for misses.
type ErrorBody struct {
	Message string                  `json:"message"`
	Errors  []order.ValidationError `json:"errors,omitempty"`
	Path    string                  `json:"path,omitempty"`
}

// ErrorResponse is the envelope: every failure response is {"error": {...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ValidationFailed writes a 400 with the full list of field errors.
func ValidationFailed(c *gin.Context, errs []order.ValidationError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorBody{Message: "Validation failed", Errors: errs},
	})
}

// BadRequest writes a 400 without field errors, for bodies that never made
// it to validation.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorBody{Message: message},
	})
}

// NotFound writes the 404 envelope echoing the requested path verbatim.
func NotFound(c *gin.Context, path string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: ErrorBody{Message: "Not found", Path: path},
	})
}

// Internal writes the generic 500 envelope. Internal detail stays in the
// logs, never in the body.
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: ErrorBody{Message: "Internal server error"},
	})
}
