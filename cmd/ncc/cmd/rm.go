package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type rmArgs struct {
	path string
}

func NewRemoveCmd(c *Context) *cobra.Command {
	args := &rmArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "rm",
		Short: "Delete a remote file or folder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunRemove(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.path, "path", "p", "", "remote path to delete")
	return subc
}

func onRunRemove(ctx context.Context, c *Context, args *rmArgs) error {
	if len(args.path) == 0 {
		return fmt.Errorf("no remote path found")
	}
	if err := c.Client.DeleteFile(ctx, args.path); err != nil {
		return fmt.Errorf("delete file failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("delete file succ", zap.String("path", args.path))
	return nil
}

func init() {
	register(NewRemoveCmd)
}
