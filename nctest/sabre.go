package nctest

import (
	"bytes"
	"encoding/xml"
	"net/http"

	ncwebdav "github.com/xxxsen/ncfile/webdav"
)

const (
	sabreContentType = "application/xml; charset=utf-8"
)

var sabreExceptions = map[int]string{
	http.StatusUnauthorized:       `Sabre\DAV\Exception\NotAuthenticated`,
	http.StatusForbidden:          `Sabre\DAV\Exception\Forbidden`,
	http.StatusNotFound:           `Sabre\DAV\Exception\NotFound`,
	http.StatusMethodNotAllowed:   `Sabre\DAV\Exception\MethodNotAllowed`,
	http.StatusConflict:           `Sabre\DAV\Exception\Conflict`,
	http.StatusPreconditionFailed: `Sabre\DAV\Exception\PreconditionFailed`,
	http.StatusLocked:             `Sabre\DAV\Exception\Locked`,
	http.StatusBadRequest:         `Sabre\DAV\Exception\BadRequest`,
}

func sabreException(code int) string {
	if v, ok := sabreExceptions[code]; ok {
		return v
	}
	return `Sabre\DAV\Exception`
}

func renderSabreError(code int, msg string) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	buf.WriteString(`<d:error xmlns:d="` + ncwebdav.NamespaceDAV + `" xmlns:s="` + ncwebdav.NamespaceSabre + `">` + "\n")
	buf.WriteString("  <s:exception>")
	_ = xml.EscapeText(buf, []byte(sabreException(code)))
	buf.WriteString("</s:exception>\n  <s:message>")
	_ = xml.EscapeText(buf, []byte(msg))
	buf.WriteString("</s:message>\n</d:error>\n")
	return buf.Bytes()
}

// sabreErrorWriter replaces the plain text error bodies of x/net/webdav with sabre error documents.
type sabreErrorWriter struct {
	http.ResponseWriter
	failed bool
}

func (w *sabreErrorWriter) WriteHeader(code int) {
	if code < http.StatusBadRequest {
		w.ResponseWriter.WriteHeader(code)
		return
	}
	w.failed = true
	h := w.Header()
	h.Del("Content-Length")
	h.Del("X-Content-Type-Options")
	h.Set("Content-Type", sabreContentType)
	w.ResponseWriter.WriteHeader(code)
	_, _ = w.ResponseWriter.Write(renderSabreError(code, http.StatusText(code)))
}

func (w *sabreErrorWriter) Write(b []byte) (int, error) {
	if w.failed {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}
