package nextbest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"go.uber.org/zap"
)

// Search holds the state of one ranking run over a fixed graph: the current
// winner and the set of weights that have already won a round.
type Search struct {
	graph   *core.Graph
	opts    Options
	log     *zap.Logger
	seen    map[int64]struct{}
	current *Round
}

// New prepares a Search over g. The graph is only read, never mutated.
//
// Errors: prim_kruskal.ErrNilGraph, prim_kruskal.ErrRootOutOfRange.
func New(g *core.Graph, opts ...Option) (*Search, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, prim_kruskal.ErrNilGraph
	}
	if o.Root < 0 || o.Root >= g.VertexCount() {
		return nil, fmt.Errorf("nextbest: %w: %d not in [0,%d)", prim_kruskal.ErrRootOutOfRange, o.Root, g.VertexCount())
	}

	return &Search{
		graph: g,
		opts:  o,
		log:   o.Logger.With(zap.String("component", "nextbest")),
		seen:  make(map[int64]struct{}),
	}, nil
}

// First computes the MST of the original graph, records its weight and makes
// it the current tree. Calling First again restarts the search.
//
// Errors: prim_kruskal.ErrDisconnected when the original graph has no spanning tree.
func (s *Search) First() (Round, error) {
	tree, err := prim_kruskal.Prim(s.graph, prim_kruskal.WithRoot(s.opts.Root))
	if err != nil {
		return Round{}, fmt.Errorf("nextbest: round 1: %w", err)
	}

	s.seen = map[int64]struct{}{tree.Weight: {}}
	s.current = &Round{Index: 1, Tree: tree}
	s.log.Debug("round accepted", zap.Int("round", 1), zap.Int64("weight", tree.Weight))

	return *s.current, nil
}

// Next runs one exclusion round from the current tree.
//
// For every edge of the current tree, Prim runs on the original graph minus
// that edge. Disconnected results are skipped. The cheapest candidate whose
// weight has not won before is accepted; ties keep the earliest edge.
//
// Errors:
//   - ErrNotStarted          : First has not been called.
//   - ErrNoEligibleCandidate : every candidate was disconnected or already seen.
//     The current tree and the seen weights are left untouched.
func (s *Search) Next() (Round, error) {
	if s.current == nil {
		return Round{}, ErrNotStarted
	}
	index := s.current.Index + 1
	edges := s.current.Tree.Edges

	candidates := make([]Candidate, 0, len(edges))
	trees := make([]prim_kruskal.SpanningTree, 0, len(edges))
	best, disconnected := -1, 0

	for _, e := range edges {
		s.log.Debug("excluding edge",
			zap.Int("round", index),
			zap.Int("u", e.To), zap.Int("v", e.From), zap.Int64("weight", e.Weight))

		reduced, err := s.graph.WithoutEdge(e)
		if err != nil {
			return Round{}, fmt.Errorf("nextbest: round %d: %w", index, err)
		}
		tree, err := prim_kruskal.Prim(reduced, prim_kruskal.WithRoot(s.opts.Root))
		if errors.Is(err, prim_kruskal.ErrDisconnected) {
			disconnected++
			candidates = append(candidates, Candidate{Excluded: e, Disconnected: true})
			trees = append(trees, prim_kruskal.SpanningTree{})
			s.log.Debug("candidate disconnected", zap.Int("round", index), zap.Error(err))
			continue
		}
		if err != nil {
			return Round{}, fmt.Errorf("nextbest: round %d: %w", index, err)
		}

		candidates = append(candidates, Candidate{Excluded: e, Weight: tree.Weight})
		trees = append(trees, tree)
		s.log.Debug("candidate", zap.Int("round", index), zap.Int64("weight", tree.Weight))

		if _, dup := s.seen[tree.Weight]; dup {
			continue
		}
		if best < 0 || tree.Weight < candidates[best].Weight {
			best = len(candidates) - 1
		}
	}

	if best < 0 {
		return Round{}, fmt.Errorf("%w: round %d: %d candidates, %d disconnected",
			ErrNoEligibleCandidate, index, len(candidates), disconnected)
	}

	excluded := candidates[best].Excluded
	s.current = &Round{
		Index:      index,
		Tree:       trees[best],
		Excluded:   &excluded,
		Candidates: candidates,
	}
	s.seen[trees[best].Weight] = struct{}{}
	s.log.Debug("round accepted", zap.Int("round", index), zap.Int64("weight", trees[best].Weight))

	return *s.current, nil
}

// Run performs First and then up to Rounds-1 calls to Next. Running out of
// eligible candidates ends the ranking early with Exhausted set; it is not an error.
func (s *Search) Run() (Ranking, error) {
	first, err := s.First()
	if err != nil {
		return Ranking{}, err
	}
	ranking := Ranking{Rounds: make([]Round, 0, s.opts.Rounds)}
	ranking.Rounds = append(ranking.Rounds, first)

	for len(ranking.Rounds) < s.opts.Rounds {
		rd, err := s.Next()
		if errors.Is(err, ErrNoEligibleCandidate) {
			s.log.Debug("search exhausted", zap.Int("rounds", len(ranking.Rounds)), zap.Error(err))
			ranking.Exhausted = true
			break
		}
		if err != nil {
			return Ranking{}, err
		}
		ranking.Rounds = append(ranking.Rounds, rd)
	}

	return ranking, nil
}

// Seen reports whether weight w has already won a round.
func (s *Search) Seen(w int64) bool {
	_, ok := s.seen[w]
	return ok
}

// Current returns the latest accepted round, or false before First.
func (s *Search) Current() (Round, bool) {
	if s.current == nil {
		return Round{}, false
	}

	return *s.current, true
}
