// Package frrpaths computes IP/MPLS fast-reroute path sets over a
// weighted undirected network topology.
//
// For every ordered pair of nodes it produces, via the facade in
// package frr:
//
//   - all simple paths (package allpaths)
//   - the equal-cost lowest-weight subset, ECMP included (package spf)
//   - RFC 5286 loop-free alternates (package lfa)
//   - RFC 7490 remote loop-free alternates (package rlfa)
//
// The graph model lives in package topology, and the shared path
// primitives (EdgePath/EdgePaths/NodePath/NodePaths) live in package
// pathset. See cmd/frrpath for the command-line entry point.
package frrpaths
