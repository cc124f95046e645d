package ncclient

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xxxsen/ncfile/diag"
	"github.com/xxxsen/ncfile/nctest"
)

const (
	testUser = "bob"
	testPwd  = "bob-secret-pwd"
)

type testEnv struct {
	cli IClient
	rec *diag.CaptureRecorder
	svr *nctest.Server
	ts  *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	svr, ts := nctest.NewTestServer(t, map[string]string{testUser: testPwd})
	rec := diag.NewCaptureRecorder()
	cli, err := New(WithHost(ts.URL), WithAuth(testUser, testPwd), WithRecorder(rec))
	require.NoError(t, err)
	return &testEnv{cli: cli, rec: rec, svr: svr, ts: ts}
}

func newRawClient(t *testing.T, host string, rec diag.IRecorder) IClient {
	if rec == nil {
		rec = diag.Nop()
	}
	cli, err := New(WithHost(host), WithAuth(testUser, testPwd), WithRecorder(rec))
	require.NoError(t, err)
	return cli
}

func writeLocalFile(t *testing.T, name string, data []byte) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0644))
	return p
}
