// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// kinds.go - GraphKind names the epidemic topologies and Generate builds them
// with the reference parameters.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/epinet/core"
)

// GraphKind selects a contact graph topology.
type GraphKind int

const (
	// SmallWorld is a Watts–Strogatz graph (k=4, p=0.3).
	SmallWorld GraphKind = iota
	// ScaleFree is a Barabási–Albert graph (m=2).
	ScaleFree
	// Random is an Erdős–Rényi graph (p=0.05).
	Random
)

var kindNames = [...]string{
	SmallWorld: "small-world",
	ScaleFree:  "scale-free",
	Random:     "random",
}

// kindAliases maps accepted spellings to kinds. Keys are lower-case.
var kindAliases = map[string]GraphKind{
	"small-world":     SmallWorld,
	"small_world":     SmallWorld,
	"watts_strogatz":  SmallWorld,
	"scale-free":      ScaleFree,
	"scale_free":      ScaleFree,
	"barabasi_albert": ScaleFree,
	"random":          Random,
	"erdos_renyi":     Random,
}

// String returns the canonical name of k.
func (k GraphKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("GraphKind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k GraphKind) Valid() bool { return k >= 0 && int(k) < len(kindNames) }

// ParseGraphKind resolves a topology name, case-insensitively, including
// the watts_strogatz / barabasi_albert / erdos_renyi aliases.
func ParseGraphKind(s string) (GraphKind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("ParseGraphKind(%q): %w", s, ErrUnknownGraphKind)
}

// Constructor returns the reference constructor for k.
func (k GraphKind) Constructor() (Constructor, error) {
	switch k {
	case SmallWorld:
		return WattsStrogatz(SmallWorldDegree, SmallWorldRewire), nil
	case ScaleFree:
		return BarabasiAlbert(ScaleFreeAttach), nil
	case Random:
		return RandomSparse(RandomEdgeProb), nil
	default:
		return nil, fmt.Errorf("%s: %v: %w", MethodGenerate, k, ErrUnknownGraphKind)
	}
}

// Generate builds an n-node contact graph of the given kind.
//
//	g, err := builder.Generate(builder.ScaleFree, 200, builder.WithSeed(7))
//
// Errors: ErrUnknownGraphKind, ErrTooFewVertices, ErrNeedRandSource.
func Generate(kind GraphKind, n int, opts ...BuilderOption) (*core.ContactGraph, error) {
	con, err := kind.Constructor()
	if err != nil {
		return nil, err
	}
	g, err := BuildGraph(n, opts, con)
	if err != nil {
		return nil, fmt.Errorf("%s(%v, n=%d): %w", MethodGenerate, kind, n, err)
	}

	return g, nil
}
