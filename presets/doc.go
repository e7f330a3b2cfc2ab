// SPDX-License-Identifier: MIT

// Package presets provides a library of named tiling patterns.
//
// Presets come from two places:
//
//   - Builtin: HCL files embedded in the binary (square, triangular,
//     honeycomb, kagome, cubic, bcc).
//   - User directories or file systems holding *.hcl, *.yaml and *.yml files.
//
// HCL layout (one or more preset blocks per file):
//
//	preset "honeycomb" {
//	  description = "two-site hexagonal lattice"
//	  dimension   = 2
//	  a1          = [1.73, 0]
//	  a2          = [0.87, 1.5]
//
//	  node "a" {}
//	  node "b" { offset = [0, 1] }
//
//	  edge {
//	    source      = "a"
//	    target      = "b"
//	    cell_offset = [0, -1]
//	  }
//	}
//
// YAML files hold one preset per document with the same keys (name,
// description, dimension, a1, a2, a3, nodes[{id, offset, role}],
// edges[{source, target, cell_offset}]).
//
// Every preset is checked with tiling.ValidatePattern when it is loaded.
// A preset that fails to decode or validate, or whose name is already taken,
// is dropped: the loader logs the reason at Warn and records it in
// Library.Rejected. Only unreadable files and directories are returned as
// errors.
package presets
