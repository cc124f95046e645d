package ncclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/xxxsen/ncfile/utils"
	"github.com/xxxsen/ncfile/webdav"
)

func (d *defaultClient) DeleteFile(ctx context.Context, path string) error {
	const op = "delete_file"
	api := d.filePath(utils.EscapeSpace(path))
	d.record(ctx, op, "deleting file on NC instance: %s", api)
	if _, err := d.execute(ctx, op, api, &directive{Method: http.MethodDelete}); err != nil {
		return err
	}
	return nil
}

func isFolderExistError(err error) bool {
	var re *RemoteError
	if !errors.As(err, &re) {
		return false
	}
	return re.StatusCode == http.StatusMethodNotAllowed
}

func (d *defaultClient) makeFolder(ctx context.Context, op string, escapedFolder string) error {
	api := d.filePath(escapedFolder)
	if _, err := d.execute(ctx, op, api, &directive{Method: webdav.MethodMkcol}); err != nil {
		if isFolderExistError(err) {
			d.record(ctx, op, "folder %s exists already", escapedFolder)
			return nil
		}
		return err
	}
	return nil
}

// MakeFolder creates folder, an existing folder is not an error.
func (d *defaultClient) MakeFolder(ctx context.Context, folder string) error {
	return d.makeFolder(ctx, "make_folder", utils.EscapeSpace(strings.TrimSpace(folder)))
}

// MoveFile moves src into targetFolder, the folder is created first. Spaces in the folder are
// escaped while spaces in the source path are replaced with underscores.
func (d *defaultClient) MoveFile(ctx context.Context, src string, targetFolder string) error {
	const op = "move_file"
	fixedFolder := utils.EscapeSpace(strings.TrimSpace(targetFolder))
	if err := d.makeFolder(ctx, op, fixedFolder); err != nil {
		return err
	}
	fixedSrc := utils.FlattenSpace(src)
	dst := d.buildUrl(d.filePath(utils.JoinRemote(fixedFolder, fixedSrc)))
	d.record(ctx, op, "moving %s to %s", fixedSrc, targetFolder)
	if _, err := d.execute(ctx, op, d.filePath(fixedSrc), &directive{
		Method: webdav.MethodMove,
		Header: http.Header{
			webdav.HeaderDestination: []string{dst},
		},
	}); err != nil {
		return err
	}
	return nil
}

func (d *defaultClient) UploadFile(ctx context.Context, target string, src string) error {
	const op = "upload_file"
	fixedPath := utils.EscapeSpace(strings.TrimSpace(target))
	d.record(ctx, op, "uploading file from path %s to %s", src, fixedPath)
	f, err := os.Open(src)
	if err != nil {
		return &IOError{Op: "open", Path: src, Err: err}
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return &IOError{Op: "stat", Path: src, Err: err}
	}
	if info.IsDir() {
		return &IOError{Op: "stat", Path: src, Err: errors.New("source is a directory")}
	}
	d.record(ctx, op, "file size to upload: %d (%s)", info.Size(), humanize.IBytes(uint64(info.Size())))
	if _, err := d.execute(ctx, op, d.filePath(fixedPath), &directive{
		Method: http.MethodPut,
		Header: http.Header{
			"Content-Type": []string{utils.DetermineMimeType(src)},
		},
		Body: f,
		Size: info.Size(),
	}); err != nil {
		return err
	}
	return nil
}

func (d *defaultClient) download(ctx context.Context, op string, path string) ([]byte, bool, error) {
	api := d.filePath(utils.EscapeSpace(path))
	rsp, err := d.execute(ctx, op, api, nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			d.record(ctx, op, "file %s not found", path)
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(rsp.Body) == 0 {
		return nil, false, nil
	}
	return rsp.Body, true, nil
}

// DownloadFile returns the content of path, false is returned when it does not exist or is empty.
func (d *defaultClient) DownloadFile(ctx context.Context, path string) ([]byte, bool, error) {
	return d.download(ctx, "download_file", path)
}

// DownloadFileTo saves the content of path into target, nothing is written when false is returned.
func (d *defaultClient) DownloadFileTo(ctx context.Context, path string, target string) (bool, error) {
	const op = "download_file"
	raw, ok, err := d.download(ctx, op, path)
	if err != nil || !ok {
		return ok, err
	}
	if err := utils.SafeSaveIOToFile(target, bytes.NewReader(raw)); err != nil {
		return false, &IOError{Op: "write", Path: target, Err: err}
	}
	d.record(ctx, op, "saved %s to %s", humanize.IBytes(uint64(len(raw))), target)
	return true, nil
}
