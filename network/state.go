// SPDX-License-Identifier: MIT
// Package: epinet/network
//
// state.go - node states, snapshots and the append-only run history.

package network

import "fmt"

// NodeState is the epidemic state of one node.
type NodeState uint8

const (
	Susceptible NodeState = iota
	Infected
	Recovered
)

// String returns "S", "I" or "R".
func (s NodeState) String() string {
	switch s {
	case Susceptible:
		return "S"
	case Infected:
		return "I"
	case Recovered:
		return "R"
	default:
		return fmt.Sprintf("NodeState(%d)", uint8(s))
	}
}

// Snapshot holds one state per node, indexed by node id.
type Snapshot []NodeState

// Counts returns the number of nodes in each state.
func (s Snapshot) Counts() (susceptible, infected, recovered int) {
	for _, st := range s {
		switch st {
		case Susceptible:
			susceptible++
		case Infected:
			infected++
		case Recovered:
			recovered++
		}
	}
	return susceptible, infected, recovered
}

// Count returns the number of nodes in state st.
func (s Snapshot) Count(st NodeState) int {
	c := 0
	for _, x := range s {
		if x == st {
			c++
		}
	}
	return c
}

// History is the ordered sequence of snapshots of one run. Index 0 is the
// initial state; index k is the state after k steps. It only grows, and
// stored snapshots are never modified.
type History struct {
	snaps []Snapshot
}

// NewHistory returns an empty history with room for capacity snapshots.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{snaps: make([]Snapshot, 0, capacity)}
}

// Append stores a copy of s.
func (h *History) Append(s Snapshot) {
	h.snaps = append(h.snaps, append(Snapshot(nil), s...))
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.snaps)
}

// At returns snapshot i. The result must not be modified.
func (h *History) At(i int) Snapshot { return h.snaps[i] }

// Last returns the most recent snapshot, or nil when empty.
func (h *History) Last() Snapshot {
	if h.Len() == 0 {
		return nil
	}
	return h.snaps[len(h.snaps)-1]
}

// Snapshots returns the stored snapshots in order. The slices must not be modified.
func (h *History) Snapshots() []Snapshot {
	if h == nil {
		return nil
	}
	return h.snaps[:len(h.snaps):len(h.snaps)]
}
