package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pricingsite/internal/pkg/response"
)

// RequestLogger logs every request, logs request errors in detail and recovers from panics.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				requestFields(log, c, start).
					WithField("stack", string(debug.Stack())).
					WithError(err).
					Error("panic")

				response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error")
				c.Abort()
				return
			}

			entry := requestFields(log, c, start)
			for _, e := range c.Errors {
				fields := entry.WithField("error_type", fmt.Sprintf("%v", e.Type))
				if e.Meta != nil {
					fields = fields.WithField("meta", e.Meta)
				}
				fields.WithError(e.Err).Error("request_error")
			}

			switch status := c.Writer.Status(); {
			case status >= http.StatusInternalServerError:
				entry.Error("request")
			case status >= http.StatusBadRequest:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
		}()

		c.Next()
	}
}

func requestFields(log logrus.FieldLogger, c *gin.Context, start time.Time) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"status":     c.Writer.Status(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"query":      c.Request.URL.RawQuery,
		"client_ip":  c.ClientIP(),
		"username":   c.GetString(ContextUsername),
		"request_id": c.GetString(ContextRequestID),
		"latency":    time.Since(start).String(),
	})
}
