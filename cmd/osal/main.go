package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/0xef53/go-osal/core"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
}

func main() {
	app := new(cli.Command)

	app.Name = "osal"
	app.Usage = "Inspect what the OS abstraction layer sees on this host"
	app.HideHelpCommand = true
	app.EnableShellCompletion = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug/verbose mode",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Sources: cli.EnvVars("OSAL_CONFIG"),
			Usage:   "path to the YAML configuration file",
		},
	}

	app.Commands = []*cli.Command{
		// STAT
		&cli.Command{
			Name:      "stat",
			Usage:     "print file metadata",
			ArgsUsage: "PATH [PATH ...]",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "follow", Aliases: []string{"L"}, Usage: "follow symbolic links"},
				&cli.BoolFlag{Name: "human", Aliases: []string{"H"}, Usage: "print sizes in human readable format"},
			},
			Action: runStat,
		},
		// LIMIT
		&cli.Command{
			Name:      "limit",
			Usage:     "print or change resource limits of the process",
			ArgsUsage: "[RESOURCE]",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "soft", Usage: "new current limit (a number or \"unlimited\")"},
				&cli.StringFlag{Name: "hard", Usage: "new maximum limit (a number or \"unlimited\")"},
			},
			Action: runLimit,
		},
		// UMASK
		&cli.Command{
			Name:      "umask",
			Usage:     "print or change the file mode creation mask",
			ArgsUsage: "[OCTAL-MODE|SYMBOLIC-MODE]",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "symbolic", Aliases: []string{"S"}, Usage: "print the mask in symbolic form"},
			},
			Action: runUmask,
		},
		// DIRS
		&cli.Command{
			Name:   "dirs",
			Usage:  "print configuration, cache and data directories",
			Action: runDirs,
		},
		// FACTS
		&cli.Command{
			Name:   "facts",
			Usage:  "print platform facts",
			Action: runFacts,
		},
		// VERSION
		&cli.Command{
			Name:  "version",
			Usage: "print the version information",
			Action: func(ctx context.Context, c *cli.Command) error {
				fmt.Printf("v%s, (built %s)\n", core.Version, runtime.Version())
				return nil
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatalln(err)
	}
}

func newPlatform(c *cli.Command) (*core.Platform, error) {
	cfg := core.DefaultConfig()

	if fname := c.String("config"); len(fname) != 0 {
		var err error

		if cfg, err = core.LoadConfig(fname); err != nil {
			return nil, err
		}
	}

	log.SetLevel(cfg.Level())

	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	return core.NewPlatform(cfg, nil), nil
}
