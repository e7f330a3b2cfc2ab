package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/katalvlaran/qlattice/engine"
	"github.com/katalvlaran/qlattice/internal/cli"
	"github.com/katalvlaran/qlattice/presets"
)

// main is the entrypoint for latticegen.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, executes the selected mode and writes its output to outW.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lib, err := presets.Builtin(presets.WithLogger(logger))
	if err != nil {
		return err
	}
	if cfg.PresetsDir != "" {
		if err := lib.LoadDir(cfg.PresetsDir); err != nil {
			return err
		}
	}

	if cfg.Mode == cli.ModeList {
		return listPresets(outW, lib)
	}

	req, err := buildRequest(cfg, lib)
	if err != nil {
		return err
	}
	eng, err := engine.New(
		engine.WithMaxNodes(cfg.MaxNodes),
		engine.WithCacheSize(0),
		engine.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if cfg.Estimate {
		est, err := eng.Estimate(req)
		if err != nil {
			return err
		}
		return writeJSON(outW, est)
	}

	res, err := eng.Generate(context.Background(), req)
	if err != nil {
		return err
	}
	return writeJSON(outW, res.Graph)
}

// buildRequest turns the parsed flags into an engine request.
func buildRequest(cfg *cli.Config, lib *presets.Library) (engine.Request, error) {
	switch cfg.Mode {
	case cli.ModePreset:
		p, ok := lib.Get(cfg.Preset)
		if !ok {
			return nil, &cli.ExitError{Code: 2, Message: fmt.Sprintf("unknown preset %q (see -list)", cfg.Preset)}
		}
		req := engine.TilingRequest{Pattern: p.Pattern, Range: cfg.Range, BaseZ: cfg.BaseZ}
		if cfg.Scheme != nil {
			req.Scheme = *cfg.Scheme
		}
		return req, nil

	case cli.ModeRHG:
		return engine.RHGRequest{
			Variant: cfg.Variant,
			Params:  cfg.Params,
			Origin:  cfg.Origin,
			Scheme:  cfg.Scheme,
		}, nil
	}
	return nil, &cli.ExitError{Code: 2, Message: "no generation mode selected"}
}

func listPresets(w io.Writer, lib *presets.Library) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIM\tNODES\tEDGES\tDESCRIPTION")
	for _, p := range lib.List() {
		fmt.Fprintf(tw, "%s\t%dD\t%d\t%d\t%s\n",
			p.Name, p.Pattern.Dimension, len(p.Pattern.Cell.Nodes), len(p.Pattern.Cell.Edges), p.Description)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newLogger builds a zap logger writing to stderr in the requested format.
func newLogger(cfg *cli.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
