package nctest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	ctxKeyUser = "nctest_user"
)

func basicAuthMiddleware(users map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		uak, usk, ok := c.Request.BasicAuth()
		if !ok {
			abortUnauthorized(c, "No 'Authorization: Basic' header found")
			return
		}
		sk, ok := users[uak]
		if !ok || sk != usk {
			logutil.GetLogger(ctx).Debug("user auth failed", zap.String("ak", uak))
			abortUnauthorized(c, "Username or password was incorrect")
			return
		}
		c.Set(ctxKeyUser, uak)
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Basic realm="Nextcloud", charset="UTF-8"`)
	c.Data(http.StatusUnauthorized, sabreContentType, renderSabreError(http.StatusUnauthorized, msg))
	c.Abort()
}

func currentUser(c *gin.Context) string {
	return c.GetString(ctxKeyUser)
}

func accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logutil.GetLogger(c.Request.Context()).Debug("nctest access",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}
