package ncclient

import (
	"context"
	"net/http"

	"github.com/xxxsen/ncfile/utils"
	"github.com/xxxsen/ncfile/webdav"
)

// ContentTypeSet is the set of content types accepted by FilterFiles.
type ContentTypeSet map[string]struct{}

func NewContentTypeSet(cts ...string) ContentTypeSet {
	rs := make(ContentTypeSet, len(cts))
	for _, ct := range cts {
		rs[ct] = struct{}{}
	}
	return rs
}

// Contains matches ct exactly first, then without its parameters.
func (s ContentTypeSet) Contains(ct string) bool {
	if len(ct) == 0 {
		return false
	}
	if _, ok := s[ct]; ok {
		return true
	}
	_, ok := s[utils.MediaType(ct)]
	return ok
}

func (d *defaultClient) ListFolder(ctx context.Context, folder string, depth int) ([]*webdav.ResourceEntry, error) {
	const op = "list_folder"
	api := d.filePath(utils.EscapeSpace(folder))
	d.record(ctx, op, "looking for files in %s, folder deep:%s", api, webdav.FormatDepth(depth))
	rsp, err := d.execute(ctx, op, api, &directive{
		Method: webdav.MethodPropfind,
		Header: http.Header{
			webdav.HeaderDepth: []string{webdav.FormatDepth(depth)},
		},
	})
	if err != nil {
		return nil, err
	}
	ents, err := webdav.ParseMultistatus(rsp.Body)
	if err != nil {
		return nil, &ParseError{Kind: "multistatus", Err: err}
	}
	d.record(ctx, op, "found files:%d", len(ents))
	return ents, nil
}

func (d *defaultClient) FilterFiles(ctx context.Context, ents []*webdav.ResourceEntry, contentTypes ContentTypeSet) []*webdav.ResourceEntry {
	const op = "filter_files"
	rs := FilterFiles(ents, contentTypes, func(ent *webdav.ResourceEntry) {
		if ent.IsCollection {
			d.record(ctx, op, "skipping folder %s", ent.Path)
			return
		}
		d.record(ctx, op, "skipping file of content type %s", ent.ContentType)
	})
	d.record(ctx, op, "files left after filtering: %d", len(rs))
	return rs
}

// FilterFiles keeps the non collection entries whose content type is in contentTypes,
// onSkip is called for every dropped entry and may be nil.
func FilterFiles(ents []*webdav.ResourceEntry, contentTypes ContentTypeSet, onSkip func(ent *webdav.ResourceEntry)) []*webdav.ResourceEntry {
	rs := make([]*webdav.ResourceEntry, 0, len(ents))
	for _, ent := range ents {
		if ent == nil {
			continue
		}
		if !ent.IsCollection && contentTypes.Contains(ent.ContentType) {
			rs = append(rs, ent)
			continue
		}
		if onSkip != nil {
			onSkip(ent)
		}
	}
	return rs
}
