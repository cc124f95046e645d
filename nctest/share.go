package nctest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/ncfile/ocs"
	"go.uber.org/zap"
)

// Share is a share created through the ocs api.
type Share struct {
	ID         int
	Owner      string
	Path       string
	ShareType  int
	Permission string
	ExpireDate string
	Token      string
	URL        string
	RawForm    string
	Ctime      time.Time
}

func writeOCS(c *gin.Context, code int, rsp *ocs.ShareResponse) {
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(buf).Encode(rsp); err != nil {
		logutil.GetLogger(c.Request.Context()).Error("encode ocs response failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(code, "application/xml; charset=utf-8", buf.Bytes())
}

func failOCS(c *gin.Context, code int, msg string) {
	writeOCS(c, code, &ocs.ShareResponse{
		Meta: ocs.Meta{
			Status:     ocs.StatusFailure,
			StatusCode: code,
			Message:    msg,
		},
	})
}

func newShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:15]
}

func requestBase(c *gin.Context) string {
	schema := "http"
	if c.Request.TLS != nil {
		schema = "https"
	}
	return fmt.Sprintf("%s://%s", schema, c.Request.Host)
}

func (s *Server) handleCreateShare(c *gin.Context) {
	ctx := c.Request.Context()
	if c.GetHeader(ocs.HeaderAPIRequest) != "true" {
		failOCS(c, http.StatusPreconditionFailed, "CSRF check failed")
		return
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		failOCS(c, http.StatusBadRequest, "read body failed")
		return
	}
	form, err := url.ParseQuery(string(raw))
	if err != nil {
		failOCS(c, http.StatusBadRequest, "invalid form body")
		return
	}
	shareType, err := strconv.Atoi(form.Get("shareType"))
	if err != nil || shareType != ocs.ShareTypePublicLink {
		failOCS(c, http.StatusBadRequest, "Unknown share type")
		return
	}
	user := currentUser(c)
	sharePath := path.Clean("/" + form.Get("path"))
	if _, err := s.fs.Stat(ctx, userRoot(user)+sharePath); err != nil {
		failOCS(c, http.StatusNotFound, "Wrong path, file/folder does not exist")
		return
	}
	token := newShareToken()
	sh := &Share{
		Owner:      user,
		Path:       sharePath,
		ShareType:  shareType,
		Permission: form.Get("Permission"),
		ExpireDate: form.Get("expireDate"),
		Token:      token,
		URL:        requestBase(c) + "/s/" + token,
		RawForm:    string(raw),
		Ctime:      time.Now(),
	}
	s.mu.Lock()
	sh.ID = len(s.shares) + 1
	s.shares = append(s.shares, sh)
	s.mu.Unlock()
	logutil.GetLogger(ctx).Debug("share created", zap.String("user", user), zap.String("path", sharePath), zap.String("token", token))

	expiration := ""
	if len(sh.ExpireDate) != 0 {
		expiration = sh.ExpireDate + " 00:00:00"
	}
	writeOCS(c, http.StatusOK, &ocs.ShareResponse{
		Meta: ocs.Meta{
			Status:     ocs.StatusOK,
			StatusCode: http.StatusOK,
			Message:    "OK",
		},
		Data: ocs.ShareData{
			ID:          strconv.Itoa(sh.ID),
			ShareType:   shareType,
			Permissions: ocs.PermissionRead,
			Expiration:  expiration,
			Path:        sharePath,
			Token:       token,
			URL:         sh.URL,
		},
	})
}
