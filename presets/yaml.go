// SPDX-License-Identifier: MIT
// Package: qlattice/presets
//
// yaml.go: *.yaml / *.yml preset decoding, one preset per document.

package presets

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeYAML hands every document in src to the library. A document with
// mistyped fields is dropped and decoding continues; a syntax error stops
// the file.
func (l *Library) decodeYAML(src []byte, filename string) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	for doc := 0; ; doc++ {
		var raw rawPreset
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			var te *yaml.TypeError
			if errors.As(err, &te) {
				l.reject(Rejection{Name: raw.Name, Source: filename,
					Err: fmt.Errorf("%w: document %d: %w", ErrInvalidPreset, doc, err)})
				continue
			}
			l.reject(Rejection{Source: filename, Err: fmt.Errorf("%w: parse: %w", ErrInvalidPreset, err)})
			return
		}

		p, err := raw.preset(filename)
		if err != nil {
			l.reject(Rejection{Name: raw.Name, Source: filename, Err: fmt.Errorf("%w: %w", ErrInvalidPreset, err)})
			continue
		}
		l.add(p)
	}
}
