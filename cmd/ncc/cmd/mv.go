package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type mvArgs struct {
	src    string
	folder string
}

func NewMoveCmd(c *Context) *cobra.Command {
	args := &mvArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "mv",
		Short: "Move a remote file into a folder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunMove(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.src, "src", "s", "", "remote file to move")
	subc.PersistentFlags().StringVarP(&args.folder, "target", "t", "", "target folder, created when missing")
	return subc
}

func onRunMove(ctx context.Context, c *Context, args *mvArgs) error {
	if len(args.src) == 0 || len(args.folder) == 0 {
		return fmt.Errorf("src and target are both required")
	}
	if err := c.Client.MoveFile(ctx, args.src, args.folder); err != nil {
		return fmt.Errorf("move file failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("move file succ", zap.String("src", args.src), zap.String("folder", args.folder))
	return nil
}

func init() {
	register(NewMoveCmd)
}
