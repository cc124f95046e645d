package ncclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/xxxsen/ncfile/diag"
	"github.com/xxxsen/ncfile/ocs"
	"github.com/xxxsen/ncfile/utils"
	"github.com/xxxsen/ncfile/webdav"
)

const (
	davFilesRoot = "remote.php/dav/files"
)

const (
	defaultRecordBodyLimit = 4096
)

var (
	// certificate and hostname verification are disabled.
	defaultTransport = &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		IdleConnTimeout:     20 * time.Second,
		MaxIdleConns:        5,
		MaxIdleConnsPerHost: 1,
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: true},
	}
)

type directive struct {
	Method string
	Header http.Header
	Body   io.Reader
	Size   int64
}

type response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type defaultClient struct {
	c   *config
	cli *http.Client
	rec diag.IRecorder
}

func (d *defaultClient) buildUrl(api string) string {
	return d.c.Host + strings.TrimPrefix(api, "/")
}

// filePath returns the path of p relative to the account root, p should be normalized already.
func (d *defaultClient) filePath(p string) string {
	return utils.JoinRemote(davFilesRoot, d.c.Username, p)
}

func (d *defaultClient) record(ctx context.Context, op string, format string, args ...interface{}) {
	d.rec.Record(ctx, op, fmt.Sprintf(format, args...))
}

func formatHeader(h http.Header) string {
	if len(h) == 0 {
		return "[]"
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range h[k] {
			items = append(items, k+": "+v)
		}
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func formatBody(raw []byte) string {
	if len(raw) <= defaultRecordBodyLimit {
		return string(raw)
	}
	return fmt.Sprintf("%s...(%d bytes)", string(raw[:defaultRecordBodyLimit]), len(raw))
}

// execute sends one authenticated request and classifies the result.
func (d *defaultClient) execute(ctx context.Context, op string, api string, dr *directive) (*response, error) {
	if dr == nil {
		dr = &directive{}
	}
	method := dr.Method
	if len(method) == 0 {
		method = http.MethodGet
	}
	link := d.buildUrl(api)
	d.record(ctx, op, "sending request to url %s, method:%s", link, method)
	d.record(ctx, op, "request headers:%s", formatHeader(dr.Header))

	req, err := http.NewRequestWithContext(ctx, method, link, dr.Body)
	if err != nil {
		return nil, &ConnectionError{Method: method, URL: link, Err: err}
	}
	if dr.Body != nil {
		if dr.Size == 0 {
			req.Body = http.NoBody
			req.GetBody = nil
		}
		req.ContentLength = dr.Size
	}
	for k, vs := range dr.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.SetBasicAuth(d.c.Username, d.c.Password)

	rsp, err := d.cli.Do(req)
	if err != nil {
		d.record(ctx, op, "request failed, err:%v", err)
		return nil, &ConnectionError{Method: method, URL: link, Err: err}
	}
	defer rsp.Body.Close()
	raw, err := io.ReadAll(rsp.Body)
	if err != nil {
		d.record(ctx, op, "read response failed, err:%v", err)
		return nil, &ConnectionError{Method: method, URL: link, Err: fmt.Errorf("read body failed, err:%w", err)}
	}
	d.record(ctx, op, "response code:%d, body:%s", rsp.StatusCode, formatBody(raw))
	res := &response{
		StatusCode: rsp.StatusCode,
		Header:     rsp.Header,
		Body:       raw,
	}
	if err := checkResponse(res); err != nil {
		return nil, err
	}
	return res, nil
}

func isXMLOrUntyped(ct string) bool {
	if len(strings.TrimSpace(ct)) == 0 {
		return true
	}
	mt := utils.MediaType(ct)
	return strings.HasSuffix(mt, "/xml") || strings.HasSuffix(mt, "+xml")
}

func checkResponse(rsp *response) error {
	if rsp.StatusCode >= http.StatusBadRequest {
		return newRemoteError(rsp)
	}
	// 部分服务端在2xx的场景下也会返回异常信息
	if isXMLOrUntyped(rsp.Header.Get("Content-Type")) && webdav.ContainsExceptionMarker(rsp.Body) {
		return newRemoteError(rsp)
	}
	return nil
}

func newRemoteError(rsp *response) *RemoteError {
	e := &RemoteError{
		StatusCode: rsp.StatusCode,
		Body:       rsp.Body,
	}
	if doc, ok := webdav.ParseErrorDocument(rsp.Body); ok {
		e.Exception = doc.Exception
		e.Message = doc.Message
		return e
	}
	if meta, ok := ocs.DecodeMeta(rsp.Body); ok {
		e.Message = strings.TrimSpace(meta.Message)
	}
	return e
}

func New(opts ...Option) (IClient, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	c.Host = strings.TrimSpace(c.Host)
	if len(c.Host) == 0 {
		return nil, &ConfigError{Key: "host", Value: c.Host, Err: fmt.Errorf("no host found")}
	}
	if !strings.HasSuffix(c.Host, "/") {
		c.Host += "/"
	}
	if len(c.Username) == 0 {
		return nil, &ConfigError{Key: "username", Value: c.Username, Err: fmt.Errorf("no username found")}
	}
	rec := c.Recorder
	if rec == nil {
		r, err := diag.NewRecorder(c.DebugMode, c.DebugOut)
		if err != nil {
			return nil, &ConfigError{Key: "debug_mode", Value: c.DebugMode, Err: err}
		}
		rec = r
	}
	cli := c.Client
	if cli == nil {
		cli = &http.Client{
			Timeout:   c.Timeout,
			Transport: defaultTransport,
		}
	}
	return &defaultClient{c: c, cli: cli, rec: rec}, nil
}
