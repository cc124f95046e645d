package webdav

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	// SabreExceptionMarker shows up in every exception body of sabre based servers.
	SabreExceptionMarker = `Sabre\DAV\Exception`
)

// ParseMultistatus decodes a PROPFIND response, entries keep the document order.
func ParseMultistatus(raw []byte) ([]*ResourceEntry, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("empty multistatus document")
	}
	ms := &Multistatus{}
	if err := xml.Unmarshal(raw, ms); err != nil {
		return nil, fmt.Errorf("decode multistatus failed, err:%w", err)
	}
	rs := make([]*ResourceEntry, 0, len(ms.Responses))
	for _, item := range ms.Responses {
		rs = append(rs, convertResponseToEntry(item))
	}
	return rs, nil
}

func isStatusOK(status string) bool {
	status = strings.TrimSpace(status)
	if len(status) == 0 {
		return true
	}
	// HTTP/1.1 200 OK
	fields := strings.Fields(status)
	if len(fields) < 2 {
		return false
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return false
	}
	return code >= 200 && code < 300
}

func convertResponseToEntry(resp *Response) *ResourceEntry {
	ent := &ResourceEntry{
		Href: strings.TrimSpace(resp.Href),
	}
	ent.Path = unescapeHref(ent.Href)
	for _, ps := range resp.Propstats {
		if !isStatusOK(ps.Status) {
			continue
		}
		p := ps.Prop
		if p.ResourceType != nil && p.ResourceType.Collection != nil {
			ent.IsCollection = true
		}
		if v := strings.TrimSpace(p.DisplayName); len(v) != 0 {
			ent.DisplayName = v
		}
		if v := strings.TrimSpace(p.ContentType); len(v) != 0 {
			ent.ContentType = v
		}
		if v := strings.TrimSpace(p.ETag); len(v) != 0 {
			ent.ETag = v
		}
		if v := strings.TrimSpace(p.ContentLength); len(v) != 0 {
			if sz, err := strconv.ParseInt(v, 10, 64); err == nil {
				ent.Size = sz
			}
		}
		if v := strings.TrimSpace(p.LastModified); len(v) != 0 {
			if t, err := http.ParseTime(v); err == nil {
				ent.ModTime = t
			}
		}
	}
	return ent
}

// ParseErrorDocument decodes a sabre error body, false is returned if raw is not one.
func ParseErrorDocument(raw []byte) (*ErrorDocument, bool) {
	if !bytes.Contains(raw, []byte("error")) {
		return nil, false
	}
	doc := &ErrorDocument{}
	if err := xml.Unmarshal(raw, doc); err != nil {
		return nil, false
	}
	doc.Exception = strings.TrimSpace(doc.Exception)
	doc.Message = strings.TrimSpace(doc.Message)
	return doc, true
}

func ContainsExceptionMarker(raw []byte) bool {
	return bytes.Contains(raw, []byte(SabreExceptionMarker))
}
