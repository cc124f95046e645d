package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/xxxsen/ncfile/ncclient"
	"github.com/xxxsen/ncfile/webdav"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type lsArgs struct {
	folder string
	depth  int
	types  []string
}

func NewListCmd(c *Context) *cobra.Command {
	args := &lsArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "ls",
		Short: "List a remote folder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("depth") {
				args.depth = c.Config.Depth
			}
			return onRunList(ctx, c, args, cmd.OutOrStdout())
		},
	}
	subc.PersistentFlags().StringVarP(&args.folder, "path", "p", "", "remote folder")
	subc.PersistentFlags().IntVarP(&args.depth, "depth", "d", 1, "listing depth, -1 for infinity")
	subc.PersistentFlags().StringSliceVarP(&args.types, "type", "t", nil, "keep files of these content types only")
	return subc
}

func printEntries(w io.Writer, ents []*webdav.ResourceEntry) {
	for _, ent := range ents {
		kind := "-"
		size := humanize.IBytes(uint64(ent.Size))
		if ent.IsCollection {
			kind = "d"
			size = "-"
		}
		mtime := "-"
		if !ent.ModTime.IsZero() {
			mtime = ent.ModTime.Local().Format("2006-01-02 15:04:05")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", kind, size, mtime, ent.ContentType, ent.Path)
	}
}

func onRunList(ctx context.Context, c *Context, args *lsArgs, w io.Writer) error {
	ents, err := c.Client.ListFolder(ctx, args.folder, args.depth)
	if err != nil {
		return fmt.Errorf("list folder failed, err:%w", err)
	}
	types := args.types
	if len(types) == 0 {
		types = c.Config.ContentTypes
	}
	if len(types) != 0 {
		ents = c.Client.FilterFiles(ctx, ents, ncclient.NewContentTypeSet(types...))
	}
	logutil.GetLogger(ctx).Debug("list folder succ", zap.String("folder", args.folder), zap.Int("count", len(ents)))
	printEntries(w, ents)
	return nil
}

func init() {
	register(NewListCmd)
}
