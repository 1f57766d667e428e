package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

func runFacts(_ context.Context, c *cli.Command) error {
	p, err := newPlatform(c)
	if err != nil {
		return err
	}

	f := p.Facts()

	product := f.SystemProduct()
	if len(product) == 0 {
		product = "-"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "linux\t%t\n", f.IsLinux())
	fmt.Fprintf(w, "macos\t%t\n", f.IsMacOS())
	fmt.Fprintf(w, "windows\t%t\n", f.IsWindows())
	fmt.Fprintf(w, "unix\t%t\n", f.IsUnix())
	fmt.Fprintf(w, "nano-server\t%t\n", f.IsNanoServer())
	fmt.Fprintf(w, "iot\t%t\n", f.IsIoT())
	fmt.Fprintf(w, "windows-desktop\t%t\n", f.IsWindowsDesktop())
	fmt.Fprintf(w, "system-product\t%s\n", product)
	fmt.Fprintf(w, "parent-pid\t%d\n", p.ParentPid(os.Getpid()))
	fmt.Fprintf(w, "thread-id\t%d\n", p.CurrentThreadID())
	fmt.Fprintf(w, "user\t%s\n", orID(p.UserFromPid(os.Getpid()), uint32(os.Getuid())))
	w.Flush()

	return nil
}
