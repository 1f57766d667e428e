package core

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// TempDir is a per-process scratch directory created on first use.
type TempDir struct {
	mu      sync.Mutex
	root    string
	product string
	path    string
}

// NewTempDir returns a handle for a directory named <product>-<uuid>
// under root. An empty root means the OS temporary directory.
func NewTempDir(root, product string) *TempDir {
	return &TempDir{
		root:    root,
		product: product,
	}
}

func (d *TempDir) rootDir() string {
	if d.root != "" {
		return d.root
	}

	return os.TempDir()
}

// Path returns the directory, creating it if necessary. When it cannot
// be created the root itself is returned.
func (d *TempDir) Path() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.path != "" {
		if _, err := os.Stat(d.path); err == nil {
			return d.path
		}
	}

	root := d.rootDir()

	if d.path == "" {
		d.path = filepath.Join(root, d.product+"-"+uuid.NewString())
	}

	if err := mkdirAll(d.path, 0o700); err != nil {
		log.WithField("path", d.path).Warnf("Cannot create temporary directory: %s", err)

		return root
	}

	log.WithField("path", d.path).Debug("Temporary directory created")

	return d.path
}

// Remove deletes the directory and everything in it. The next call
// to Path creates it again.
func (d *TempDir) Remove() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.path == "" {
		return nil
	}

	if err := os.RemoveAll(d.path); err != nil {
		return err
	}

	d.path = ""

	return nil
}

// TemporaryDirectory returns the per-process temporary directory.
func (p *Platform) TemporaryDirectory() string {
	return p.temp.Path()
}

func (p *Platform) RemoveTemporaryDirectory() error {
	return p.temp.Remove()
}
