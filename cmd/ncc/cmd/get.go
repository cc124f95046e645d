package cmd

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type getArgs struct {
	path   string
	output string
}

func NewGetCmd(c *Context) *cobra.Command {
	args := &getArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "get",
		Short: "Download a remote file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunGet(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.path, "path", "p", "", "remote file to download")
	subc.PersistentFlags().StringVarP(&args.output, "output", "o", "", "local file, default to the remote file name")
	return subc
}

func onRunGet(ctx context.Context, c *Context, args *getArgs) error {
	if len(args.path) == 0 {
		return fmt.Errorf("no remote path found")
	}
	output := args.output
	if len(output) == 0 {
		output = path.Base(args.path)
	}
	start := time.Now()
	found, err := c.Client.DownloadFileTo(ctx, args.path, output)
	if err != nil {
		return fmt.Errorf("download file failed, err:%w", err)
	}
	if !found {
		return fmt.Errorf("remote file not found, path:%s", args.path)
	}
	logutil.GetLogger(ctx).Info("download file succ", zap.String("path", args.path), zap.String("output", output), zap.Duration("cost", time.Since(start)))
	return nil
}

func init() {
	register(NewGetCmd)
}
