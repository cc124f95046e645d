package ncclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ocsServer(t *testing.T, wr *wireRecorder, status int, body string) *httptest.Server {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wr != nil {
			wr.capture(r)
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestCreateShareScenario(t *testing.T) {
	wr := &wireRecorder{}
	rsp := `<?xml version="1.0"?><ocs><meta><status>ok</status><statuscode>200</statuscode><message>OK</message></meta><data><id>7</id><url>https://host/s/abc</url><token>abc</token></data></ocs>`
	ts := ocsServer(t, wr, http.StatusOK, rsp)
	cli := newRawClient(t, ts.URL, nil)
	rs, err := cli.CreateShare(context.Background(), "my file.txt", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, "https://host/s/abc", rs.URL)
	assert.Equal(t, "abc", rs.Token)

	require.Equal(t, 1, len(wr.list()))
	r := wr.list()[0]
	assert.Equal(t, http.MethodPost, r.Method)
	assert.Equal(t, "/ocs/v2.php/apps/files_sharing/api/v1/shares", r.URI)
	assert.Equal(t, "path=/my_file.txt&shareType=3&Permission=1&expireDate=2025-01-01", r.Body)
	assert.Equal(t, "application/x-www-form-urlencoded", r.ContentType)
	assert.Equal(t, testUser, r.User)
}

func TestCreateShareMissingURL(t *testing.T) {
	rsp := `<?xml version="1.0"?><ocs><meta><status>ok</status><statuscode>200</statuscode></meta><data><id>7</id></data></ocs>`
	ts := ocsServer(t, nil, http.StatusOK, rsp)
	cli := newRawClient(t, ts.URL, nil)
	_, err := cli.CreateShare(context.Background(), "a.txt", "2025-01-01")
	var mfe *MissingFieldError
	require.True(t, errors.As(err, &mfe), "err:%v", err)
	assert.Equal(t, "data.url", mfe.Field)
}

func TestCreateShareParseError(t *testing.T) {
	ts := ocsServer(t, nil, http.StatusOK, `{"ocs":{"data":{"url":"x"}}}`)
	cli := newRawClient(t, ts.URL, nil)
	_, err := cli.CreateShare(context.Background(), "a.txt", "2025-01-01")
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "err:%v", err)
	assert.Equal(t, "ocs", pe.Kind)
}

func TestCreateShareFailureMeta(t *testing.T) {
	rsp := `<?xml version="1.0"?><ocs><meta><status>failure</status><statuscode>404</statuscode><message>Wrong path, file/folder does not exist</message></meta><data/></ocs>`
	for _, status := range []int{http.StatusOK, http.StatusNotFound} {
		ts := ocsServer(t, nil, status, rsp)
		cli := newRawClient(t, ts.URL, nil)
		_, err := cli.CreateShare(context.Background(), "a.txt", "2025-01-01")
		var re *RemoteError
		require.True(t, errors.As(err, &re), "err:%v", err)
		assert.Equal(t, 404, re.StatusCode)
		assert.Equal(t, "Wrong path, file/folder does not exist", re.Message)
	}
}

func TestCreateShareAgainstServer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.cli.UploadFile(ctx, "my_file.txt", writeLocalFile(t, "my_file.txt", []byte("share me"))))
	rs, err := env.cli.CreateShare(ctx, "my file.txt", "2025-01-01")
	require.NoError(t, err)
	shares := env.svr.Shares()
	require.Equal(t, 1, len(shares))
	assert.Equal(t, shares[0].URL, rs.URL)
	assert.Equal(t, "/my_file.txt", shares[0].Path)
	assert.Equal(t, "1", shares[0].Permission)
	assert.Equal(t, "2025-01-01", shares[0].ExpireDate)

	_, err = env.cli.CreateShare(ctx, "missing.txt", "2025-01-01")
	assert.True(t, errors.Is(err, ErrNotFound), "err:%v", err)
}

func TestBuildShareForm(t *testing.T) {
	assert.Equal(t, "path=/a/b_c.txt&shareType=3&Permission=1&expireDate=2025-01-01", buildShareForm("/a/b_c.txt", "2025-01-01"))
	assert.Equal(t, "path=/a%26b.txt&shareType=3&Permission=1&expireDate=", buildShareForm("/a&b.txt", ""))
}
