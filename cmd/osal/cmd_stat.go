package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/0xef53/go-osal/core"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

func runStat(_ context.Context, c *cli.Command) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no path specified")
	}

	p, err := newPlatform(c)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
	defer w.Flush()

	for _, path := range c.Args().Slice() {
		md, err := p.GetMetadata(path, c.Bool("follow"))
		if err != nil {
			return err
		}

		size := strconv.FormatInt(md.Size, 10)
		if c.Bool("human") {
			size = humanize.IBytes(uint64(md.Size))
		}

		name := path

		if md.Kind == core.ItemSymbolicLink {
			if target, err := p.LinkTarget(path); err == nil {
				name += " -> " + target
			}
		}

		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			md.PermissionString(),
			md.HardlinkCount,
			orID(p.OwnerName(md), md.UserID),
			orID(p.GroupName(md), md.GroupID),
			size,
			md.ModifiedTime.Format("Jan _2 15:04"),
			name,
		)
	}

	return nil
}

// orID returns name, or the numeric id when the name is unknown.
func orID(name string, id uint32) string {
	if len(name) == 0 {
		return strconv.FormatUint(uint64(id), 10)
	}

	return name
}
