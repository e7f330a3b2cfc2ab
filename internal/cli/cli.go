package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/rhg"
	"github.com/katalvlaran/qlattice/tiling"
	"github.com/katalvlaran/qlattice/vec"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...interface{}) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Mode is the action selected on the command line.
type Mode int

// Modes.
const (
	ModeList Mode = iota + 1
	ModePreset
	ModeRHG
)

// Config is the parsed command line.
type Config struct {
	Mode Mode

	// Preset mode.
	Preset string
	Range  tiling.CellRange
	BaseZ  float64

	// RHG mode.
	Variant rhg.Variant
	Params  rhg.Params
	Origin  vec.Vec3

	// Scheme is nil when -scheme was not given.
	Scheme     *lattice.IDScheme
	Estimate   bool
	MaxNodes   int
	PresetsDir string
	LogLevel   zapcore.Level
	LogFormat  string
}

// Parse processes command-line arguments. It returns the Config, whether
// the program should exit cleanly, or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("latticegen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
latticegen - generate periodic and RHG lattices as JSON graphs.

Usage:
  latticegen -list
  latticegen -preset NAME -x A:B -y A:B [-z A:B] [-base-z Z] [-scheme cell|position]
  latticegen -rhg faceedge|surface -size LX,LY,LZ [-boundary XXZZ] [-origin X,Y,Z]

Options:
`)
		flagSet.PrintDefaults()
	}

	listFlag := flagSet.Bool("list", false, "List available presets and exit.")
	presetFlag := flagSet.String("preset", "", "Name of the preset to tile.")
	xFlag := flagSet.String("x", "", "Cell range on the a1 axis, 'min:max' or a single index.")
	yFlag := flagSet.String("y", "", "Cell range on the a2 axis.")
	zFlag := flagSet.String("z", "", "Cell range on the a3 axis (3D presets), or the single layer of a 2D preset.")
	baseZFlag := flagSet.Float64("base-z", 0, "Depth slice of a 2D preset.")
	rhgFlag := flagSet.String("rhg", "", "RHG variant: 'faceedge' or 'surface'.")
	sizeFlag := flagSet.String("size", "", "RHG size 'Lx,Ly,Lz'.")
	boundaryFlag := flagSet.String("boundary", "XXZZ", "Surface-code boundary: 'XXZZ', 'ZZXX' or four of X/Z in top,bottom,left,right order.")
	originFlag := flagSet.String("origin", "0,0,0", "World origin of an RHG lattice 'x,y,z'.")
	schemeFlag := flagSet.String("scheme", "", "Node ID scheme: 'cell' or 'position'. Default depends on the generator.")
	estimateFlag := flagSet.Bool("estimate", false, "Print the estimated node and edge counts instead of generating.")
	maxNodesFlag := flagSet.Int("max-nodes", lattice.DefaultMaxNodes, "Refuse requests estimated above this many nodes.")
	presetsDirFlag := flagSet.String("presets-dir", "", "Directory with additional *.hcl / *.yaml presets.")
	logLevelFlag := flagSet.String("log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "console", "Log output format. Options: 'console' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err)
	}
	if flagSet.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}

	cfg := &Config{
		BaseZ:      *baseZFlag,
		Estimate:   *estimateFlag,
		MaxNodes:   *maxNodesFlag,
		PresetsDir: *presetsDirFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
	}

	modes := 0
	for _, on := range []bool{*listFlag, *presetFlag != "", *rhgFlag != ""} {
		if on {
			modes++
		}
	}
	switch {
	case modes == 0:
		flagSet.Usage()
		return nil, true, nil
	case modes > 1:
		return nil, false, usageError("-list, -preset and -rhg are mutually exclusive")
	}

	if cfg.MaxNodes < 1 {
		return nil, false, usageError("invalid max-nodes: must be ≥ 1, got %d", cfg.MaxNodes)
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'console' or 'json'")
	}
	lvl, err := zapcore.ParseLevel(*logLevelFlag)
	if err != nil {
		return nil, false, usageError("invalid log-level: %v", err)
	}
	cfg.LogLevel = lvl

	if *schemeFlag != "" {
		s, err := lattice.ParseIDScheme(*schemeFlag)
		if err != nil {
			return nil, false, usageError("invalid scheme: %v", err)
		}
		cfg.Scheme = &s
	}

	switch {
	case *listFlag:
		cfg.Mode = ModeList

	case *presetFlag != "":
		cfg.Mode = ModePreset
		cfg.Preset = *presetFlag
		if *xFlag == "" || *yFlag == "" {
			return nil, false, usageError("-preset requires -x and -y")
		}
		if cfg.Range.X, err = ParseSpan(*xFlag); err != nil {
			return nil, false, usageError("invalid -x: %v", err)
		}
		if cfg.Range.Y, err = ParseSpan(*yFlag); err != nil {
			return nil, false, usageError("invalid -y: %v", err)
		}
		if *zFlag != "" {
			z, err := ParseSpan(*zFlag)
			if err != nil {
				return nil, false, usageError("invalid -z: %v", err)
			}
			cfg.Range.Z = &z
		}

	case *rhgFlag != "":
		cfg.Mode = ModeRHG
		if cfg.Variant, err = rhg.ParseVariant(*rhgFlag); err != nil {
			return nil, false, usageError("invalid -rhg: %v", err)
		}
		if *sizeFlag == "" {
			return nil, false, usageError("-rhg requires -size")
		}
		size, err := parseInts(*sizeFlag, 3)
		if err != nil {
			return nil, false, usageError("invalid -size: %v", err)
		}
		cfg.Params = rhg.Params{Lx: size[0], Ly: size[1], Lz: size[2]}
		if cfg.Params.Boundary, err = rhg.ParseBoundary(*boundaryFlag); err != nil {
			return nil, false, usageError("invalid -boundary: %v", err)
		}
		if cfg.Origin, err = ParseVec(*originFlag); err != nil {
			return nil, false, usageError("invalid -origin: %v", err)
		}
	}

	return cfg, false, nil
}

// ParseSpan parses "min:max" or a single integer.
func ParseSpan(s string) (tiling.Span, error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), ":")
	a, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return tiling.Span{}, fmt.Errorf("span %q: %w", s, err)
	}
	if !found {
		return tiling.Span{Min: a, Max: a}, nil
	}
	b, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return tiling.Span{}, fmt.Errorf("span %q: %w", s, err)
	}
	return tiling.Span{Min: a, Max: b}, nil
}

// ParseVec parses "x,y" or "x,y,z".
func ParseVec(s string) (vec.Vec3, error) {
	parts := strings.Split(s, ",")
	fs := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vec.Vec3{}, fmt.Errorf("vector %q: %w", s, err)
		}
		fs[i] = f
	}
	v, ok := vec.FromSlice(fs)
	if !ok {
		return vec.Vec3{}, fmt.Errorf("vector %q: want 2 or 3 components", s)
	}
	return v, nil
}

func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d comma-separated integers", s, n)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
