package fileops

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/logging"
	"github.com/arthur-debert/xsltview/pkg/types"
	"github.com/rs/zerolog"
)

// Plan is an ordered batch of file operations.
type Plan struct {
	name    string
	fs      types.FS
	sfs     *synthfs.SynthFS
	ops     []synthfs.Operation
	failure error
	logger  zerolog.Logger
}

// New starts an empty plan. name prefixes operation IDs in logs.
func New(fsys types.FS, name string) *Plan {
	return &Plan{
		name:   name,
		fs:     fsys,
		sfs:    synthfs.New(),
		logger: logging.GetLogger("fileops"),
	}
}

// Len returns the number of planned operations.
func (p *Plan) Len() int { return len(p.ops) }

// MkdirAll plans the creation of path and its parents.
func (p *Plan) MkdirAll(path string, perm fs.FileMode) *Plan {
	return p.add("mkdir", path, func() error {
		if err := p.fs.MkdirAll(path, perm); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", path)
		}
		return nil
	})
}

// WriteFile plans writing data to path, replacing any existing file.
func (p *Plan) WriteFile(path string, data []byte, perm fs.FileMode) *Plan {
	return p.add("write", path, func() error {
		if err := p.fs.WriteFile(path, data, perm); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
		}
		return nil
	})
}

// Rename plans moving oldpath over newpath. oldpath is removed if the move fails.
func (p *Plan) Rename(oldpath, newpath string) *Plan {
	return p.add("rename", newpath, func() error {
		if err := p.fs.Rename(oldpath, newpath); err != nil {
			_ = p.fs.Remove(oldpath)
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", newpath)
		}
		return nil
	})
}

// Remove plans deleting path. A missing path is not an error.
func (p *Plan) Remove(path string) *Plan {
	return p.add("remove", path, func() error {
		if err := p.fs.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove %s", path)
		}
		return nil
	})
}

func (p *Plan) add(kind, path string, run func() error) *Plan {
	id := fmt.Sprintf("%s_%s_%s_%d", p.name, kind, filepath.Base(path), len(p.ops))
	p.ops = append(p.ops, p.sfs.CustomOperationWithID(id, func(ctx context.Context, _ filesystem.FileSystem) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := run(); err != nil {
			if p.failure == nil {
				p.failure = err
			}
			return err
		}
		return nil
	}))
	return p
}

// Run executes the plan. An empty plan is a no-op.
func (p *Plan) Run(ctx context.Context) error {
	if len(p.ops) == 0 {
		return nil
	}

	options := synthfs.DefaultPipelineOptions()
	// planned operations carry no inverse
	options.RollbackOnError = false

	p.logger.Debug().Str("plan", p.name).Int("operationCount", len(p.ops)).Msg("Executing file plan")
	_, err := synthfs.RunWithOptions(ctx, pipelineFS(), options, p.ops...)
	if p.failure != nil {
		return p.failure
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "file plan %s failed", p.name)
	}
	return nil
}

// pipelineFS is the filesystem handed to the synthfs executor. Operations
// act on the plan's types.FS and never use it directly.
func pipelineFS() filesystem.FullFileSystem {
	return synthfs.NewPathAwareFileSystem(filesystem.NewOSFileSystem("/"), "/").WithAbsolutePaths()
}
