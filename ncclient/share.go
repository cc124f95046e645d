package ncclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/xxxsen/ncfile/ocs"
	"github.com/xxxsen/ncfile/utils"
)

func escapeFormValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "%2F", "/")
}

func buildShareForm(path string, expiry string) string {
	items := []string{
		"path=" + escapeFormValue(path),
		"shareType=" + strconv.Itoa(ocs.ShareTypePublicLink),
		"Permission=" + strconv.Itoa(ocs.PermissionRead),
		"expireDate=" + escapeFormValue(expiry),
	}
	return strings.Join(items, "&")
}

// CreateShare creates a read only public link of path which expires at expiry (YYYY-MM-DD).
func (d *defaultClient) CreateShare(ctx context.Context, path string, expiry string) (*ocs.ShareResult, error) {
	const op = "create_share"
	finalPath := "/" + strings.TrimPrefix(utils.FlattenSpace(path), "/")
	d.record(ctx, op, "creating share for file %s with expiry %s", finalPath, expiry)
	body := buildShareForm(finalPath, expiry)
	rsp, err := d.execute(ctx, op, ocs.SharesAPI, &directive{
		Method: http.MethodPost,
		Header: http.Header{
			ocs.HeaderAPIRequest: []string{"true"},
			"Content-Type":       []string{"application/x-www-form-urlencoded"},
		},
		Body: strings.NewReader(body),
		Size: int64(len(body)),
	})
	if err != nil {
		return nil, err
	}
	rs, err := ocs.DecodeShare(rsp.Body)
	if err != nil {
		var se *ocs.StatusError
		switch {
		case errors.Is(err, ocs.ErrMissingURL):
			return nil, &MissingFieldError{Field: "data.url"}
		case errors.As(err, &se):
			return nil, &RemoteError{StatusCode: se.StatusCode, Message: se.Message, Body: rsp.Body}
		default:
			return nil, &ParseError{Kind: "ocs", Err: err}
		}
	}
	d.record(ctx, op, "share created, url:%s", rs.URL)
	return rs, nil
}
