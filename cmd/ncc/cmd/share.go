package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type shareArgs struct {
	path   string
	expiry string
}

func NewShareCmd(c *Context) *cobra.Command {
	args := &shareArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "share",
		Short: "Create a public share link",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunShare(ctx, c, args, cmd.OutOrStdout())
		},
	}
	subc.PersistentFlags().StringVarP(&args.path, "path", "p", "", "remote path to share")
	subc.PersistentFlags().StringVarP(&args.expiry, "expire", "e", "", "expire date, eg: 2025-12-31")
	return subc
}

func onRunShare(ctx context.Context, c *Context, args *shareArgs, w io.Writer) error {
	if len(args.path) == 0 {
		return fmt.Errorf("no remote path found")
	}
	rs, err := c.Client.CreateShare(ctx, args.path, args.expiry)
	if err != nil {
		return fmt.Errorf("create share failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("create share succ", zap.String("path", args.path), zap.String("id", rs.ID), zap.String("expiration", rs.Expiration))
	_, _ = fmt.Fprintln(w, rs.URL)
	return nil
}

func init() {
	register(NewShareCmd)
}
