package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xxxsen/ncfile/utils"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type putArgs struct {
	file   string
	target string
}

func NewPutCmd(c *Context) *cobra.Command {
	args := &putArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "put",
		Short: "Upload a local file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunPut(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.file, "file", "f", "", "local file to upload")
	subc.PersistentFlags().StringVarP(&args.target, "path", "p", "", "remote path, a trailing '/' keeps the local file name")
	return subc
}

func uploadTarget(file string, target string) string {
	if len(target) == 0 {
		return filepath.Base(file)
	}
	if target[len(target)-1] == '/' {
		return utils.JoinRemote(target, filepath.Base(file))
	}
	return target
}

func onRunPut(ctx context.Context, c *Context, args *putArgs) error {
	if len(args.file) == 0 {
		return fmt.Errorf("no upload file found")
	}
	start := time.Now()
	target := uploadTarget(args.file, args.target)
	if err := c.Client.UploadFile(ctx, target, args.file); err != nil {
		return fmt.Errorf("upload file failed, err:%w", err)
	}
	size := "-"
	if info, err := os.Stat(args.file); err == nil {
		size = humanize.IBytes(uint64(info.Size()))
	}
	logutil.GetLogger(ctx).Info("upload file succ", zap.String("target", target), zap.String("size", size), zap.Duration("cost", time.Since(start)))
	return nil
}

func init() {
	register(NewPutCmd)
}
