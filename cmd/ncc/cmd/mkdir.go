package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type mkdirArgs struct {
	folder string
}

func NewMkdirCmd(c *Context) *cobra.Command {
	args := &mkdirArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "mkdir",
		Short: "Create a remote folder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunMkdir(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.folder, "path", "p", "", "remote folder to create")
	return subc
}

func onRunMkdir(ctx context.Context, c *Context, args *mkdirArgs) error {
	if len(args.folder) == 0 {
		return fmt.Errorf("no remote folder found")
	}
	if err := c.Client.MakeFolder(ctx, args.folder); err != nil {
		return fmt.Errorf("make folder failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("make folder succ", zap.String("folder", args.folder))
	return nil
}

func init() {
	register(NewMkdirCmd)
}
