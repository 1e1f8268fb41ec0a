// Package frr is the facade that orchestrates the topology, allpaths,
// spf, lfa and rlfa packages in the construction order spec.md §4.7
// requires: Topology, then AllPaths, then SPF, then LFA and rLFA.
//
// TODO: TI-LFA (node-SID/adj-SID label-stack computation) is out of
// scope; see spec.md §9. No code stub is provided.
package frr

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jwbensley/frrpaths/allpaths"
	"github.com/jwbensley/frrpaths/lfa"
	"github.com/jwbensley/frrpaths/pathset"
	"github.com/jwbensley/frrpaths/rlfa"
	"github.com/jwbensley/frrpaths/spf"
	"github.com/jwbensley/frrpaths/topology"
)

// ErrUnknownNode is returned by query methods given a name absent from
// the underlying topology (spec.md §7's "Unknown Node" error kind).
var ErrUnknownNode = errors.New("frr: unknown node")

// Config holds the caller-supplied knobs for a computation run. The zero
// value is the spec's default configuration (extended P-space, trombone
// forbidden). There is no package-level Settings object: every facade is
// constructed from an explicit Config, per spec.md §9's rejection of
// process-wide mutable state.
type Config struct {
	SpaceMode rlfa.SpaceMode
	Trombone  rlfa.TromboneMode
}

// FRR owns exactly one Topology, AllPaths, SPF, LFA and rLFA result,
// built once at construction time and read-only thereafter.
type FRR struct {
	top  *topology.Topology
	all  *allpaths.AllPaths
	spf  *spf.SPF
	lfa  *lfa.LFA
	rlfa *rlfa.RLFA
}

// New builds the full computation pipeline over top: AllPaths, then SPF,
// then LFA and rLFA. Any stage error aborts construction.
func New(top *topology.Topology, cfg Config, logger zerolog.Logger) (*FRR, error) {
	all, err := allpaths.Compute(top, logger)
	if err != nil {
		return nil, fmt.Errorf("frr: allpaths: %w", err)
	}

	s := spf.Compute(all, logger)

	l, err := lfa.Compute(top, s, logger)
	if err != nil {
		return nil, fmt.Errorf("frr: lfa: %w", err)
	}

	r, err := rlfa.Compute(top, s, rlfa.Config{SpaceMode: cfg.SpaceMode, Trombone: cfg.Trombone}, logger)
	if err != nil {
		return nil, fmt.Errorf("frr: rlfa: %w", err)
	}

	logger.Info().
		Int("nodes", top.NodeCount()).
		Int("edges", top.EdgeCount()).
		Int("all_paths", all.Len()).
		Int("lfa_paths", l.Len()).
		Int("rlfa_paths", r.Len()).
		Msg("frr: computation complete")

	return &FRR{top: top, all: all, spf: s, lfa: l, rlfa: r}, nil
}

// Topology returns the facade's underlying graph.
func (f *FRR) Topology() *topology.Topology {
	return f.top
}

func (f *FRR) checkPair(source, target string) error {
	if !f.top.HasNode(source) {
		return fmt.Errorf("%w: %s", ErrUnknownNode, source)
	}
	if !f.top.HasNode(target) {
		return fmt.Errorf("%w: %s", ErrUnknownNode, target)
	}
	return nil
}

// AllPathsBetween returns every simple path from source to target.
func (f *FRR) AllPathsBetween(source, target string) (*pathset.NodePaths, error) {
	if err := f.checkPair(source, target); err != nil {
		return nil, err
	}
	return f.all.GetPathsBetween(source, target), nil
}

// SPFPathsBetween returns the ECMP lowest-weight paths from source to target.
func (f *FRR) SPFPathsBetween(source, target string) (*pathset.NodePaths, error) {
	if err := f.checkPair(source, target); err != nil {
		return nil, err
	}
	return f.spf.GetPathsBetween(source, target), nil
}

// LFAPathsBetween returns the RFC 5286 tagged alternates from source to target.
func (f *FRR) LFAPathsBetween(source, target string) (*pathset.NodePaths, error) {
	if err := f.checkPair(source, target); err != nil {
		return nil, err
	}
	return f.lfa.GetPathsBetween(source, target), nil
}

// RLFAPathsBetween returns the RFC 7490 tagged tunnels from source to target.
func (f *FRR) RLFAPathsBetween(source, target string) (*pathset.NodePaths, error) {
	if err := f.checkPair(source, target); err != nil {
		return nil, err
	}
	return f.rlfa.GetPathsBetween(source, target), nil
}

// CostBetween returns the SPF cost between source and target, or
// ErrUnknownNode / spf.ErrNoPath as appropriate.
func (f *FRR) CostBetween(source, target string) (int, error) {
	if err := f.checkPair(source, target); err != nil {
		return 0, err
	}
	return f.spf.CostBetween(source, target)
}
