// Package nctest runs an in-memory imitation of a nextcloud server. It serves the
// webdav files api and the ocs share api, which is enough to exercise ncclient.
package nctest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/webdav"
)

const (
	davPrefix   = "/remote.php/dav"
	filesPrefix = "/files"
	sharesAPI   = "/ocs/v2.php/apps/files_sharing/api/v1/shares"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

type Server struct {
	engine *gin.Engine
	fs     webdav.FileSystem
	dav    *webdav.Handler
	users  map[string]string

	mu     sync.Mutex
	shares []*Share
}

func New(users map[string]string) *Server {
	fs := webdav.NewMemFS()
	s := &Server{
		engine: gin.New(),
		fs:     fs,
		dav: &webdav.Handler{
			Prefix:     davPrefix,
			FileSystem: fs,
			LockSystem: webdav.NewMemLS(),
		},
		users: users,
	}
	s.initAPI(s.engine)
	return s
}

func (s *Server) initAPI(router *gin.Engine) {
	router.Use(gin.Recovery(), accessLogMiddleware())
	authMiddleware := basicAuthMiddleware(s.users)
	for _, method := range davMethods {
		router.Handle(method, davPrefix+"/*all", authMiddleware, s.handleDav)
	}
	router.POST(sharesAPI, authMiddleware, s.handleCreateShare)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// FS exposes the backing file system so tests can prepare or inspect files.
func (s *Server) FS() webdav.FileSystem {
	return s.fs
}

func (s *Server) Shares() []*Share {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs := make([]*Share, len(s.shares))
	copy(rs, s.shares)
	return rs
}

func userRoot(user string) string {
	return filesPrefix + "/" + user
}

func (s *Server) ensureUserRoot(ctx context.Context, user string) error {
	for _, dir := range []string{filesPrefix, userRoot(user)} {
		if err := s.fs.Mkdir(ctx, dir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	return nil
}

// NewTestServer starts a tls server backed by a new Server, it is closed when the test ends.
func NewTestServer(t testing.TB, users map[string]string) (*Server, *httptest.Server) {
	s := New(users)
	ts := httptest.NewTLSServer(s)
	t.Cleanup(ts.Close)
	return s, ts
}
