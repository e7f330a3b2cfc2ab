// SPDX-License-Identifier: MIT
// Package: qlattice/presets
//
// load.go: builtin, directory and fs.FS loaders.

package presets

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed builtin/*.hcl
var builtinFiles embed.FS

// Builtin returns a library holding the embedded presets.
func Builtin(opts ...Option) (*Library, error) {
	l := New(opts...)
	sub, err := fs.Sub(builtinFiles, "builtin")
	if err != nil {
		return nil, errors.Wrap(err, "presets: open builtin files")
	}
	if err := l.load(sub, SourceBuiltin); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadDir returns a library holding the presets found under dir.
func LoadDir(dir string, opts ...Option) (*Library, error) {
	l := New(opts...)
	if err := l.LoadDir(dir); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadFS returns a library holding the presets found in fsys.
func LoadFS(fsys fs.FS, opts ...Option) (*Library, error) {
	l := New(opts...)
	if err := l.LoadFS(fsys); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadDir adds the presets found under dir (recursively). Names already in
// the library are rejected as duplicates.
func (l *Library) LoadDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, "presets: stat %s", dir)
	}
	if !info.IsDir() {
		return errors.Errorf("presets: %s is not a directory", dir)
	}
	return l.load(os.DirFS(dir), dir)
}

// LoadFS adds the presets found in fsys (recursively).
func (l *Library) LoadFS(fsys fs.FS) error {
	return l.load(fsys, "")
}

// load walks fsys in lexical order. root prefixes the file names recorded
// as preset sources.
func (l *Library) load(fsys fs.FS, root string) error {
	parser := hclparse.NewParser()
	files := 0

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "presets: walk %s", p)
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(p))
		if ext != ".hcl" && ext != ".yaml" && ext != ".yml" {
			return nil
		}

		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return errors.Wrapf(err, "presets: read %s", p)
		}
		name := sourceName(root, p)
		files++
		if ext == ".hcl" {
			l.decodeHCL(src, name, parser)
		} else {
			l.decodeYAML(src, name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.cfg.logger.Info("presets loaded",
		zap.String("root", sourceName(root, ".")),
		zap.Int("files", files),
		zap.Int("presets", l.Len()),
		zap.Int("rejected", len(l.rejected)),
	)
	return nil
}

func sourceName(root, p string) string {
	if root == "" {
		return p
	}
	return path.Join(root, p)
}
