package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillswap/swap-backend/internal/consts"
	"github.com/skillswap/swap-backend/internal/view"
)

// ActorMiddleware resolves the authenticated caller from the X-User-ID
// header installed by the upstream auth layer. Authentication itself lives
// outside this service.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				view.CreateResponse[any](nil, nil, nil, "missing user identity"))
			return
		}

		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				view.CreateResponse[any](nil, err, nil, "invalid user identity"))
			return
		}

		c.Set(consts.ActorContextKey, uint(userID))
		c.Next()
	}
}

// RequestIDMiddleware attaches a correlation id to every request, reusing
// the caller's X-Request-ID when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
