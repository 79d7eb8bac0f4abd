package server

import (
	"log/slog"
	"time"

	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/httpx"

	"github.com/gin-gonic/gin"
)

// RequestLogger emits one structured record per request through the injected
// logger, including any errors handlers attached to the context.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
			logger.Error("request failed", attrs...)
			return
		}
		logger.Info("request handled", attrs...)
	}
}

// Recovery converts a handler panic into the generic 500 envelope. The panic
// value is logged and never reaches the client.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("handler panicked",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", r,
				)
				if !c.Writer.Written() {
					httpx.Internal(c)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
