package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/0xef53/go-osal/core"

	"github.com/urfave/cli/v3"
)

func runUmask(_ context.Context, c *cli.Command) error {
	p, err := newPlatform(c)
	if err != nil {
		return err
	}

	if c.NArg() > 0 {
		if err := setUmask(p, c.Args().First()); err != nil {
			return err
		}
	}

	info, err := p.GetUmask()
	if err != nil {
		return err
	}

	if c.Bool("symbolic") {
		fmt.Println(info.Symbolic)
	} else {
		fmt.Println(info.Octal)
	}

	return nil
}

// setUmask accepts either an octal mode or a symbolic one.
func setUmask(p *core.Platform, arg string) error {
	if len(arg) == 0 || arg[0] < '0' || arg[0] > '7' {
		return p.SetSymbolicUmask(arg)
	}

	v, err := strconv.ParseUint(arg, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid octal mode: %s", arg)
	}

	return p.SetUmask(uint32(v))
}
