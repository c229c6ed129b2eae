package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/utility_billing_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// UsageAnalytics reports each successful API call to PostHog as an event named after the route,
// e.g. "/api/v1/charges/:chargeID/payments" -> "api_v1_charges_:chargeID_payments".
// The distinct id is the user or account in the path, falling back to the client IP.
func UsageAnalytics(client *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.IsEnabled() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}
		if requestID, ok := GetRequestIDFromCtx(c.Request.Context()); ok {
			props["request_id"] = requestID
		}

		client.Enqueue(distinctID(c), eventName, props)
	}
}

func distinctID(c *gin.Context) string {
	if id := c.Param("userID"); id != "" {
		return id
	}
	if id := c.Param("accountID"); id != "" {
		return id
	}
	return c.ClientIP()
}
