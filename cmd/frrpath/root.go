package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jwbensley/frrpaths/frr"
	"github.com/jwbensley/frrpaths/internal/diagram"
	"github.com/jwbensley/frrpaths/internal/frrlog"
	"github.com/jwbensley/frrpaths/topology"
)

type rootOptions struct {
	debug      bool
	jsonOutput bool
	dotPath    string
	pngPath    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "frrpath <topology-file>",
		Short: "Compute AllPaths/SPF/LFA/rLFA over a network topology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug-level logging")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print the summary as JSON")
	cmd.PersistentFlags().StringVar(&opts.dotPath, "dot", "", "write the topology as Graphviz DOT to this path")
	cmd.PersistentFlags().StringVar(&opts.pngPath, "png", "", "render the topology to a PNG via the external dot binary")

	return cmd
}

type summary struct {
	Nodes     int `json:"nodes"`
	Edges     int `json:"edges"`
	AllPaths  int `json:"all_paths"`
	SPFPaths  int `json:"spf_paths"`
	LFAPaths  int `json:"lfa_paths"`
	RLFAPaths int `json:"rlfa_paths"`
}

func run(cmd *cobra.Command, path string, opts *rootOptions) error {
	level := zerolog.InfoLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	log := frrlog.New(zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger())

	log.Infof("loading topology from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("frrpath: read %s: %w", path, err)
	}

	top, err := topology.FromJSON(data, filepath.Base(path), log.Zerolog())
	if err != nil {
		return fmt.Errorf("frrpath: parse %s: %w", path, err)
	}
	log.Debugf("parsed topology: %d nodes, %d edges", top.NodeCount(), top.EdgeCount())

	f, err := frr.New(top, frr.Config{}, log.Zerolog())
	if err != nil {
		return fmt.Errorf("frrpath: compute: %w", err)
	}
	log.Info("computation complete")

	if opts.dotPath != "" || opts.pngPath != "" {
		dot, err := diagram.Generate(top, nil)
		if err != nil {
			return fmt.Errorf("frrpath: diagram: %w", err)
		}
		if opts.dotPath != "" {
			if err := os.WriteFile(opts.dotPath, []byte(dot), 0o644); err != nil {
				return fmt.Errorf("frrpath: write dot %s: %w", opts.dotPath, err)
			}
			log.Infof("wrote DOT to %s", opts.dotPath)
		}
		if opts.pngPath != "" {
			if err := diagram.RenderPNG(cmd.Context(), dot, opts.pngPath); err != nil {
				return fmt.Errorf("frrpath: render png: %w", err)
			}
			log.Infof("wrote PNG to %s", opts.pngPath)
		}
	}

	total := func(count func(s, d string) (int, error), nodes []string) int {
		n := 0
		for _, s := range nodes {
			for _, d := range nodes {
				if s == d {
					continue
				}
				c, err := count(s, d)
				if err != nil {
					continue
				}
				n += c
			}
		}
		return n
	}

	nodes := top.Nodes()
	lenOf := func(getter func(s, d string) (int, error)) int { return total(getter, nodes) }

	sum := summary{
		Nodes: top.NodeCount(),
		Edges: top.EdgeCount(),
		AllPaths: lenOf(func(s, d string) (int, error) {
			ps, err := f.AllPathsBetween(s, d)
			if err != nil {
				return 0, err
			}
			return ps.Len(), nil
		}),
		SPFPaths: lenOf(func(s, d string) (int, error) {
			ps, err := f.SPFPathsBetween(s, d)
			if err != nil {
				return 0, err
			}
			return ps.Len(), nil
		}),
		LFAPaths: lenOf(func(s, d string) (int, error) {
			ps, err := f.LFAPathsBetween(s, d)
			if err != nil {
				return 0, err
			}
			return ps.Len(), nil
		}),
		RLFAPaths: lenOf(func(s, d string) (int, error) {
			ps, err := f.RLFAPathsBetween(s, d)
			if err != nil {
				return 0, err
			}
			return ps.Len(), nil
		}),
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "nodes:      %d\n", sum.Nodes)
	fmt.Fprintf(out, "edges:      %d\n", sum.Edges)
	fmt.Fprintf(out, "all_paths:  %d\n", sum.AllPaths)
	fmt.Fprintf(out, "spf_paths:  %d\n", sum.SPFPaths)
	fmt.Fprintf(out, "lfa_paths:  %d\n", sum.LFAPaths)
	fmt.Fprintf(out, "rlfa_paths: %d\n", sum.RLFAPaths)
	return nil
}
