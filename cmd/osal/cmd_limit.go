package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/0xef53/go-osal/core"

	"github.com/urfave/cli/v3"
)

func runLimit(_ context.Context, c *cli.Command) error {
	p, err := newPlatform(c)
	if err != nil {
		return err
	}

	var limits []*core.ResourceLimitInfo

	if c.NArg() == 0 {
		if c.IsSet("soft") || c.IsSet("hard") {
			return fmt.Errorf("resource kind is required to change a limit")
		}

		if limits, err = p.Limits(); err != nil {
			return err
		}
	} else {
		kind, err := core.ParseResource(c.Args().First())
		if err != nil {
			return err
		}

		info, err := p.GetLimit(kind)
		if err != nil {
			return err
		}

		if c.IsSet("soft") || c.IsSet("hard") {
			if info, err = applyLimitFlags(c, info); err != nil {
				return err
			}

			if err := p.SetLimit(info); err != nil {
				return err
			}
		}

		limits = append(limits, info)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RESOURCE\tSOFT\tHARD\n")
	for _, l := range limits {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.Resource, formatLimit(l.Current), formatLimit(l.Maximum))
	}
	w.Flush()

	return nil
}

func applyLimitFlags(c *cli.Command, info *core.ResourceLimitInfo) (*core.ResourceLimitInfo, error) {
	v := *info

	if c.IsSet("soft") {
		n, err := parseLimit(c.String("soft"))
		if err != nil {
			return nil, err
		}
		v.Current = n
	}

	if c.IsSet("hard") {
		n, err := parseLimit(c.String("hard"))
		if err != nil {
			return nil, err
		}
		v.Maximum = n
	}

	return &v, nil
}

func parseLimit(s string) (uint64, error) {
	if s == "unlimited" {
		return core.Unlimited, nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid limit value: %s", s)
	}

	return n, nil
}

func formatLimit(v uint64) string {
	if v == core.Unlimited {
		return "unlimited"
	}

	return strconv.FormatUint(v, 10)
}
