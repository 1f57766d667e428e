package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/0xef53/go-osal/core"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func runDirs(_ context.Context, c *cli.Command) error {
	p, err := newPlatform(c)
	if err != nil {
		return err
	}

	results := make([]*core.DirectoryResult, 0, len(core.DirectoryKinds))

	for _, kind := range core.DirectoryKinds {
		results = append(results, p.ResolveDirectory(kind))
	}

	tmp := p.TemporaryDirectory()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "KIND\tPATH\tOUTCOME\n")
	for i, kind := range core.DirectoryKinds {
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind, results[i].Path, results[i].Outcome)
	}
	fmt.Fprintf(w, "temp\t%s\t\n", tmp)
	w.Flush()

	if usesTempDir(results, tmp) {
		log.WithField("path", tmp).Info("Temporary directory is in use by the paths above and is kept")
		return nil
	}

	return p.RemoveTemporaryDirectory()
}

// usesTempDir reports whether any of the results is the temporary
// directory or lies below it.
func usesTempDir(results []*core.DirectoryResult, tmp string) bool {
	for _, res := range results {
		if res.Outcome == core.FellBackToTemp || isSubpath(tmp, res.Path) {
			return true
		}
	}

	return false
}

func isSubpath(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
