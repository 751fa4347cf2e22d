package httpapi

import (
	"time"

	"github.com/ecopulse/ecopulse/internal/common"
	"github.com/ecopulse/ecopulse/internal/logging"
	"github.com/ecopulse/ecopulse/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		)
	}
}

// accessTokenRequired rejects requests without a valid x-access-token before
// they reach a handler. The verified identity is stored in the gin context.
func (s *Server) accessTokenRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(common.AccessTokenHeaderName)
		if token == "" {
			s.logger.Warn(c.Request.Context(), "no token provided", "path", c.FullPath())
			fail(c, msgNoToken)
			c.Abort()
			return
		}

		id, err := s.users.Verify(token)
		if err != nil {
			s.logger.Warn(c.Request.Context(), "token rejected", "error", err)
			fail(c, msgInvalidToken)
			c.Abort()
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

func identityFrom(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*auth.Identity)
	return id
}
