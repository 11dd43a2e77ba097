package nextbest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"go.uber.org/zap"
)

// ErrNoEligibleCandidate indicates a round found no connected candidate whose
// weight had not already won. It is recoverable: the search simply has no
// further distinct-weight tree to offer.
var ErrNoEligibleCandidate = errors.New("nextbest: no eligible candidate")

// ErrNotStarted indicates Next was called before First.
var ErrNotStarted = errors.New("nextbest: search not started")

// DefaultRounds is the number of ranked trees Run produces unless WithRounds
// says otherwise: the MST, the second best and the third best.
const DefaultRounds = 3

// Options configures a Search. Use DefaultOptions for the defaults.
type Options struct {
	// Root is the vertex Prim grows every tree from.
	Root int

	// Rounds is the maximum number of rounds Run performs, round 1 included.
	Rounds int

	// Logger receives per-exclusion debug diagnostics. Never nil after resolution.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns root prim_kruskal.DefaultRoot, DefaultRounds and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Root:   prim_kruskal.DefaultRoot,
		Rounds: DefaultRounds,
		Logger: zap.NewNop(),
	}
}

// WithRoot sets the Prim root for every round.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// WithRounds sets how many rounds Run performs. Panics if k < 1.
func WithRounds(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("nextbest: WithRounds(%d): need k ≥ 1", k))
	}
	return func(o *Options) {
		o.Rounds = k
	}
}

// WithLogger routes diagnostics to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Candidate is the outcome of excluding one edge of the current tree.
type Candidate struct {
	// Excluded is the tree edge removed from the original graph.
	Excluded core.Edge

	// Weight is the MST weight of the reduced graph; zero when Disconnected.
	Weight int64

	// Disconnected reports that Excluded was a bridge and no tree exists.
	Disconnected bool
}

// Round is one accepted ranking step.
type Round struct {
	// Index is 1 for the MST, 2 for the second-best tree and so on.
	Index int

	// Tree is the winning spanning tree of this round.
	Tree prim_kruskal.SpanningTree

	// Excluded is the edge of the previous winner whose removal produced Tree.
	// Nil for round 1.
	Excluded *core.Edge

	// Candidates lists every exclusion tried in this round, in tree edge order.
	// Empty for round 1.
	Candidates []Candidate
}

// Weight is shorthand for r.Tree.Weight.
func (r Round) Weight() int64 {
	return r.Tree.Weight
}

// Ranking is the result of Run.
type Ranking struct {
	// Rounds holds the accepted rounds in order; Rounds[0] is the MST.
	Rounds []Round

	// Exhausted reports that Run stopped before the requested round count
	// because a round returned ErrNoEligibleCandidate.
	Exhausted bool
}

// Weights returns the accepted weights in round order.
func (r Ranking) Weights() []int64 {
	out := make([]int64, len(r.Rounds))
	for i, rd := range r.Rounds {
		out[i] = rd.Tree.Weight
	}

	return out
}
