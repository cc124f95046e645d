package nctest

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	ncwebdav "github.com/xxxsen/ncfile/webdav"
	"go.uber.org/zap"
)

var davMethods = append([]string{
	http.MethodHead,
	http.MethodOptions,
	"PROPPATCH",
	ncwebdav.MethodCopy,
	"LOCK",
	"UNLOCK",
}, ncwebdav.AllowMethods...)

func isUnderRoot(p string, root string) bool {
	p = path.Clean("/" + p)
	return p == root || strings.HasPrefix(p, root+"/")
}

func (s *Server) handleDav(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)
	root := davPrefix + userRoot(user)
	if !isUnderRoot(c.Request.URL.Path, root) {
		logutil.GetLogger(ctx).Error("access out of user root", zap.String("user", user), zap.String("path", c.Request.URL.Path))
		c.Data(http.StatusForbidden, sabreContentType, renderSabreError(http.StatusForbidden, fmt.Sprintf("access to %s is not allowed", c.Request.URL.Path)))
		return
	}
	if err := s.ensureUserRoot(ctx, user); err != nil {
		logutil.GetLogger(ctx).Error("create user root failed", zap.Error(err), zap.String("user", user))
		c.Data(http.StatusInternalServerError, sabreContentType, renderSabreError(http.StatusInternalServerError, err.Error()))
		return
	}
	s.dav.ServeHTTP(&sabreErrorWriter{ResponseWriter: c.Writer}, c.Request)
}
