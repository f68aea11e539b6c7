package main

import (
	"strings"

	"github.com/katalvlaran/epinet/network"
)

// snapshotsJSON renders each snapshot as one string, "SSIRS...", indexed by node.
func snapshotsJSON(snaps []network.Snapshot) []string {
	out := make([]string, len(snaps))
	var b strings.Builder
	for k, s := range snaps {
		b.Reset()
		b.Grow(len(s))
		for _, st := range s {
			b.WriteString(st.String())
		}
		out[k] = b.String()
	}
	return out
}
