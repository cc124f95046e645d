package webdav

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// ResourceEntry is one item of a directory listing.
type ResourceEntry struct {
	Href         string
	Path         string
	DisplayName  string
	IsCollection bool
	ContentType  string
	Size         int64
	ModTime      time.Time
	ETag         string
}

func (e *ResourceEntry) Name() string {
	if len(e.DisplayName) != 0 {
		return e.DisplayName
	}
	return path.Base(strings.TrimSuffix(e.Path, "/"))
}

func (e *ResourceEntry) HasContentType() bool {
	return len(e.ContentType) != 0
}

func unescapeHref(href string) string {
	if u, err := url.Parse(href); err == nil && len(u.Path) != 0 {
		return u.Path
	}
	if p, err := url.PathUnescape(href); err == nil {
		return p
	}
	return href
}
