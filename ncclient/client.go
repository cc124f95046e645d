package ncclient

import (
	"context"

	"github.com/xxxsen/ncfile/ocs"
	"github.com/xxxsen/ncfile/webdav"
)

// IClient talks to one account of a nextcloud like server through webdav and ocs.
// An instance is expected to run at most one request at a time.
type IClient interface {
	ListFolder(ctx context.Context, folder string, depth int) ([]*webdav.ResourceEntry, error)
	FilterFiles(ctx context.Context, ents []*webdav.ResourceEntry, contentTypes ContentTypeSet) []*webdav.ResourceEntry
	DeleteFile(ctx context.Context, path string) error
	MakeFolder(ctx context.Context, folder string) error
	MoveFile(ctx context.Context, src string, targetFolder string) error
	UploadFile(ctx context.Context, target string, src string) error
	DownloadFile(ctx context.Context, path string) ([]byte, bool, error)
	DownloadFileTo(ctx context.Context, path string, target string) (bool, error)
	CreateShare(ctx context.Context, path string, expiry string) (*ocs.ShareResult, error)
}
