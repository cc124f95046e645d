package nctest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ncwebdav "github.com/xxxsen/ncfile/webdav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUsers = map[string]string{
	"bob":   "bob-pwd",
	"alice": "alice-pwd",
}

func doRequest(t *testing.T, s *Server, method string, target string, user string, body string, hdr map[string]string) *httptest.ResponseRecorder {
	var r io.Reader
	if len(body) != 0 {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if len(user) != 0 {
		req.SetBasicAuth(user, testUsers[user])
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	s := New(testUsers)
	w := doRequest(t, s, "PROPFIND", "/remote.php/dav/files/bob/", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `Sabre\DAV\Exception\NotAuthenticated`)
	assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest("PROPFIND", "/remote.php/dav/files/bob/", nil)
	req.SetBasicAuth("bob", "wrong")
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserRootIsolation(t *testing.T) {
	s := New(testUsers)
	w := doRequest(t, s, "PROPFIND", "/remote.php/dav/files/alice/", "bob", "", map[string]string{"Depth": "1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `Sabre\DAV\Exception\Forbidden`)
	w = doRequest(t, s, "PROPFIND", "/remote.php/dav/files/bobby/", "bob", "", map[string]string{"Depth": "1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPutGetAndErrors(t *testing.T) {
	s := New(testUsers)
	w := doRequest(t, s, http.MethodPut, "/remote.php/dav/files/bob/a.txt", "bob", "hello", nil)
	require.True(t, w.Code == http.StatusCreated || w.Code == http.StatusOK, "code:%d", w.Code)

	w = doRequest(t, s, http.MethodGet, "/remote.php/dav/files/bob/a.txt", "bob", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", w.Body.String())

	w = doRequest(t, s, http.MethodGet, "/remote.php/dav/files/bob/missing.txt", "bob", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `Sabre\DAV\Exception\NotFound`)

	w = doRequest(t, s, "MKCOL", "/remote.php/dav/files/bob/dir", "bob", "", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, s, "MKCOL", "/remote.php/dav/files/bob/dir", "bob", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), `Sabre\DAV\Exception\MethodNotAllowed`)

	w = doRequest(t, s, "PROPFIND", "/remote.php/dav/files/bob/", "bob", "", map[string]string{"Depth": "1"})
	assert.Equal(t, 207, w.Code)
	assert.Contains(t, w.Body.String(), "/remote.php/dav/files/bob/a.txt")
	assert.Contains(t, w.Body.String(), "/remote.php/dav/files/bob/dir/")
}

func TestCreateShare(t *testing.T) {
	s := New(testUsers)
	w := doRequest(t, s, http.MethodPut, "/remote.php/dav/files/bob/my_file.txt", "bob", "data", nil)
	require.Less(t, w.Code, 300)

	form := "path=/my_file.txt&shareType=3&Permission=1&expireDate=2025-01-01"
	hdr := map[string]string{"OCS-APIRequest": "true", "Content-Type": "application/x-www-form-urlencoded"}
	w = doRequest(t, s, http.MethodPost, sharesAPI, "bob", form, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<status>ok</status>")

	shares := s.Shares()
	require.Equal(t, 1, len(shares))
	sh := shares[0]
	assert.Equal(t, "/my_file.txt", sh.Path)
	assert.Equal(t, "bob", sh.Owner)
	assert.Equal(t, "2025-01-01", sh.ExpireDate)
	assert.Equal(t, "1", sh.Permission)
	assert.Equal(t, form, sh.RawForm)
	assert.Contains(t, w.Body.String(), "<url>"+sh.URL+"</url>")
}

func TestCreateShareFailures(t *testing.T) {
	s := New(testUsers)
	form := "path=/nope.txt&shareType=3&Permission=1&expireDate=2025-01-01"
	w := doRequest(t, s, http.MethodPost, sharesAPI, "bob", form, nil)
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)

	hdr := map[string]string{"OCS-APIRequest": "true"}
	w = doRequest(t, s, http.MethodPost, sharesAPI, "bob", form, hdr)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "<status>failure</status>")

	w = doRequest(t, s, http.MethodPost, sharesAPI, "bob", "path=/nope.txt&shareType=0", hdr)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, len(s.Shares()))
}

func TestDavMethods(t *testing.T) {
	for _, m := range ncwebdav.AllowMethods {
		assert.Contains(t, davMethods, m)
	}
	s := New(testUsers)
	w := doRequest(t, s, http.MethodPut, "/remote.php/dav/files/bob/a.txt", "bob", "copy me", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, s, ncwebdav.MethodCopy, "/remote.php/dav/files/bob/a.txt", "bob", "", map[string]string{
		ncwebdav.HeaderDestination: "/remote.php/dav/files/bob/b.txt",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, s, http.MethodGet, "/remote.php/dav/files/bob/b.txt", "bob", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "copy me", w.Body.String())
}

func TestRenderSabreError(t *testing.T) {
	doc, ok := ncwebdav.ParseErrorDocument(renderSabreError(http.StatusNotFound, "File <a.txt> not found"))
	require.True(t, ok)
	assert.Equal(t, `Sabre\DAV\Exception\NotFound`, doc.Exception)
	assert.Equal(t, "File <a.txt> not found", doc.Message)
}
