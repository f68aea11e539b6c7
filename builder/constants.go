// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name of the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodWattsStrogatz is the canonical name for the WattsStrogatz constructor.
	MethodWattsStrogatz = "WattsStrogatz"
	// MethodBarabasiAlbert is the canonical name for the BarabasiAlbert constructor.
	MethodBarabasiAlbert = "BarabasiAlbert"
	// MethodGenerate is the canonical name of the GraphKind factory.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Reference topology parameters
//-----------------------------------------------------------------------------

const (
	// SmallWorldDegree is the ring-lattice degree k of the small-world graph.
	SmallWorldDegree = 4
	// SmallWorldRewire is the rewiring probability of the small-world graph.
	SmallWorldRewire = 0.3
	// ScaleFreeAttach is the number of edges m each new scale-free node brings.
	ScaleFreeAttach = 2
	// RandomEdgeProb is the per-pair edge probability of the random graph.
	RandomEdgeProb = 0.05
)

//-----------------------------------------------------------------------------
// Validation domains
//-----------------------------------------------------------------------------

const (
	// MinVertices is the smallest graph any constructor accepts.
	MinVertices = 1
	// MinProbability is the inclusive lower bound of a probability.
	MinProbability = 0.0
	// MaxProbability is the inclusive upper bound of a probability.
	MaxProbability = 1.0
)
