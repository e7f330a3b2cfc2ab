// SPDX-License-Identifier: MIT
// Package: qlattice/presets
//
// preset.go: Preset, Rejection and the Library collection.

package presets

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"go.uber.org/zap"

	"github.com/katalvlaran/qlattice/tiling"
)

// ErrInvalidPreset marks a preset that could not be decoded or validated.
var ErrInvalidPreset = errors.New("presets: invalid preset")

// ErrDuplicatePreset marks a preset whose name is already in the library.
var ErrDuplicatePreset = errors.New("presets: duplicate preset")

// SourceBuiltin prefixes the Source of embedded presets ("builtin/lattices2d.hcl").
const SourceBuiltin = "builtin"

// Preset is a named, validated tiling pattern.
type Preset struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Pattern     tiling.Pattern `json:"pattern"`
	// Source is the file the preset was read from.
	Source string `json:"source"`
}

// Rejection records a dropped preset. Name is empty when a whole file could
// not be decoded.
type Rejection struct {
	Name   string
	Source string
	Err    error
}

func (r Rejection) String() string {
	if r.Name == "" {
		return fmt.Sprintf("%s: %v", r.Source, r.Err)
	}
	return fmt.Sprintf("%s (%s): %v", r.Name, r.Source, r.Err)
}

// Library is an ordered collection of presets keyed by name. Loading
// methods mutate it; once loading is done it is safe for concurrent reads.
type Library struct {
	cfg      config
	byName   *treemap.Map // string → Preset, iterated in name order
	rejected []Rejection
}

// New returns an empty library.
func New(opts ...Option) *Library {
	return &Library{
		cfg:    newConfig(opts...),
		byName: treemap.NewWithStringComparator(),
	}
}

// Get returns the preset called name.
func (l *Library) Get(name string) (Preset, bool) {
	v, ok := l.byName.Get(name)
	if !ok {
		return Preset{}, false
	}
	return v.(Preset), true
}

// Keys returns all preset names in ascending order.
func (l *Library) Keys() []string {
	keys := make([]string, 0, l.byName.Size())
	it := l.byName.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(string))
	}
	return keys
}

// List returns all presets in name order.
func (l *Library) List() []Preset {
	out := make([]Preset, 0, l.byName.Size())
	it := l.byName.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Preset))
	}
	return out
}

// Len returns the number of accepted presets.
func (l *Library) Len() int { return l.byName.Size() }

// Rejected returns the presets dropped so far, in load order.
func (l *Library) Rejected() []Rejection {
	out := make([]Rejection, len(l.rejected))
	copy(out, l.rejected)
	return out
}

// add validates p and inserts it, or records why it was dropped.
func (l *Library) add(p Preset) {
	if p.Name == "" {
		l.reject(Rejection{Source: p.Source, Err: fmt.Errorf("missing name: %w", ErrInvalidPreset)})
		return
	}
	if err := tiling.ValidatePattern(p.Pattern); err != nil {
		l.reject(Rejection{Name: p.Name, Source: p.Source, Err: fmt.Errorf("%w: %w", ErrInvalidPreset, err)})
		return
	}
	if prev, dup := l.Get(p.Name); dup {
		l.reject(Rejection{Name: p.Name, Source: p.Source,
			Err: fmt.Errorf("%w: already defined in %s", ErrDuplicatePreset, prev.Source)})
		return
	}
	l.byName.Put(p.Name, p)
	l.cfg.logger.Debug("preset loaded",
		zap.String("preset", p.Name),
		zap.String("source", p.Source),
		zap.Int("dimension", p.Pattern.Dimension),
		zap.Int("nodes", len(p.Pattern.Cell.Nodes)),
	)
}

func (l *Library) reject(r Rejection) {
	l.rejected = append(l.rejected, r)
	l.cfg.logger.Warn("preset dropped",
		zap.String("preset", r.Name),
		zap.String("source", r.Source),
		zap.Error(r.Err),
	)
}
