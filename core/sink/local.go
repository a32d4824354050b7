package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resource-economy/internal/errors"
)

// Local writes artifacts into a directory on disk
type Local struct {
	dir string
}

// NewLocal creates a sink rooted at dir. The directory is created on the
// first Put.
func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

// Dir returns the output directory
func (l *Local) Dir() string {
	return l.dir
}

// Describe implements Sink
func (l *Local) Describe() string {
	return l.dir
}

// Put writes to a temporary file in the output directory and renames it
// into place, so readers never observe a partial chart.
func (l *Local) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", errors.Output(name, fmt.Errorf("invalid artifact name %q", name))
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return "", errors.Output(name, err).WithContext("dir", l.dir)
	}

	tmp, err := os.CreateTemp(l.dir, "."+name+".*.tmp")
	if err != nil {
		return "", errors.Output(name, err).WithContext("dir", l.dir)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return "", errors.Output(name, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", errors.Output(name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		cleanup()
		return "", errors.Output(name, err)
	}

	target := filepath.Join(l.dir, name)
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return "", errors.Output(name, err)
	}

	return target, nil
}
