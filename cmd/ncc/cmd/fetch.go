package cmd

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/xxxsen/ncfile/ncclient"
	"github.com/xxxsen/ncfile/webdav"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type fetchArgs struct {
	folder string
	output string
	types  []string
}

func NewFetchCmd(c *Context) *cobra.Command {
	args := &fetchArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "fetch",
		Short: "Download every matched file of a remote folder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunFetch(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.folder, "path", "p", "", "remote folder")
	subc.PersistentFlags().StringVarP(&args.output, "output", "o", ".", "local directory")
	subc.PersistentFlags().StringSliceVarP(&args.types, "type", "t", nil, "content types to download, default to content_types in config")
	return subc
}

// relPath 截取p中用户根目录之后的部分
func relPath(root string, p string) string {
	idx := strings.Index(p, root)
	if idx < 0 {
		return strings.TrimPrefix(p, "/")
	}
	return p[idx+len(root):]
}

// remoteRelPath 基于href(保持转义)还原相对用户根目录的路径, 可直接用于请求
func remoteRelPath(user string, ent *webdav.ResourceEntry) string {
	href := ent.Href
	if u, err := url.Parse(href); err == nil {
		href = u.EscapedPath()
	}
	return relPath("/files/"+url.PathEscape(user)+"/", href)
}

// localRelPath 与remoteRelPath相同, 但是已经反转义, 用于本地文件名
func localRelPath(user string, ent *webdav.ResourceEntry) string {
	return relPath("/files/"+user+"/", ent.Path)
}

func localPath(dir string, folder string, rel string) string {
	folder = strings.Trim(folder, "/")
	sub := rel
	if len(folder) != 0 {
		sub = strings.TrimPrefix(rel, folder+"/")
	}
	return filepath.Join(dir, filepath.FromSlash(sub))
}

func newClientPool(c *Context, size int) (chan ncclient.IClient, error) {
	if size <= 0 {
		size = 1
	}
	pool := make(chan ncclient.IClient, size)
	pool <- c.Client
	for i := 1; i < size; i++ {
		cli, err := c.NewClient()
		if err != nil {
			return nil, err
		}
		pool <- cli
	}
	return pool, nil
}

func onRunFetch(ctx context.Context, c *Context, args *fetchArgs) error {
	types := args.types
	if len(types) == 0 {
		types = c.Config.ContentTypes
	}
	if len(types) == 0 {
		return fmt.Errorf("no content type specified")
	}
	ents, err := c.Client.ListFolder(ctx, args.folder, c.Config.Depth)
	if err != nil {
		return fmt.Errorf("list folder failed, err:%w", err)
	}
	ents = c.Client.FilterFiles(ctx, ents, ncclient.NewContentTypeSet(types...))
	if len(ents) == 0 {
		logutil.GetLogger(ctx).Info("no file need to fetch", zap.String("folder", args.folder))
		return nil
	}
	thread := c.Config.Thread
	if thread > len(ents) {
		thread = len(ents)
	}
	//每个实例同一时刻只允许一个请求, 所以每个worker独占一个client
	pool, err := newClientPool(c, thread)
	if err != nil {
		return fmt.Errorf("init client pool failed, err:%w", err)
	}
	start := time.Now()
	var total int64
	eg, subctx := errgroup.WithContext(ctx)
	eg.SetLimit(thread)
	for _, ent := range ents {
		ent := ent
		rel := remoteRelPath(c.Config.User, ent)
		dst := localPath(args.output, args.folder, localRelPath(c.Config.User, ent))
		eg.Go(func() error {
			cli := <-pool
			defer func() {
				pool <- cli
			}()
			found, err := cli.DownloadFileTo(subctx, rel, dst)
			if err != nil {
				return fmt.Errorf("download file failed, path:%s, err:%w", rel, err)
			}
			if !found {
				logutil.GetLogger(ctx).Warn("file disappeared before download, skip", zap.String("path", rel))
				return nil
			}
			atomic.AddInt64(&total, ent.Size)
			logutil.GetLogger(ctx).Debug("file download finish", zap.String("path", rel), zap.String("local", dst), zap.String("size", humanize.IBytes(uint64(ent.Size))))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logutil.GetLogger(ctx).Error("fetch folder failed", zap.Error(err))
		return err
	}
	logutil.GetLogger(ctx).Info("fetch folder succ", zap.String("folder", args.folder), zap.Int("count", len(ents)),
		zap.String("size", humanize.IBytes(uint64(atomic.LoadInt64(&total)))), zap.Duration("cost", time.Since(start)))
	return nil
}

func init() {
	register(NewFetchCmd)
}
