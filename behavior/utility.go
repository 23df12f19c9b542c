package behavior

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/471VE/ai-roguelike/world"
)

// UtilityFunc scores how attractive running its paired node is right now.
// Higher is more attractive.
type UtilityFunc func(bb *world.Blackboard) float64

type utilityEntry struct {
	node    Node
	utility UtilityFunc
}

// UtilitySelector runs its highest-scoring child first, falling through to
// the next-highest on Fail, exactly like Selector but ranked by a utility
// function instead of declaration order.
type UtilitySelector struct {
	entries []utilityEntry
}

// NewUtilitySelector returns an empty ranked selector.
func NewUtilitySelector() *UtilitySelector { return &UtilitySelector{} }

// Add appends a (node, utility) pair and returns the selector for chaining.
func (s *UtilitySelector) Add(node Node, utility UtilityFunc) *UtilitySelector {
	s.entries = append(s.entries, utilityEntry{node: node, utility: utility})
	return s
}

func (s *UtilitySelector) scores(bb *world.Blackboard) []float64 {
	scores := make([]float64, len(s.entries))
	for i, ent := range s.entries {
		scores[i] = ent.utility(bb)
	}
	return scores
}

func rankDescending(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	return order
}

func (s *UtilitySelector) Update(w world.World, e world.Entity, bb *world.Blackboard) Result {
	order := rankDescending(s.scores(bb))
	for _, idx := range order {
		if res := s.entries[idx].node.Update(w, e, bb); res != Fail {
			return res
		}
	}
	return Fail
}

// RandomUtilitySelector samples without replacement, weighted by
// exp(utility), retrying the next sample whenever a chosen node fails —
// softmax sampling instead of UtilitySelector's strict ranking. Weighted
// sampling is done with gonum.org/v1/gonum/stat/distuv.Categorical, which
// normalizes the supplied weights itself; rng seeds Categorical.Src so a
// caller-supplied source makes the whole selector deterministic.
type RandomUtilitySelector struct {
	UtilitySelector
	rng *rand.Rand
}

// NewRandomUtilitySelector returns an empty softmax selector that draws from
// rng, so tests can seed it for reproducible sampling.
func NewRandomUtilitySelector(rng *rand.Rand) *RandomUtilitySelector {
	return &RandomUtilitySelector{rng: rng}
}

func (s *RandomUtilitySelector) Update(w world.World, e world.Entity, bb *world.Blackboard) Result {
	n := len(s.entries)
	if n == 0 {
		return Fail
	}
	weights := make([]float64, n)
	for i, score := range s.scores(bb) {
		weights[i] = expPositive(score)
	}
	for i := 0; i < n; i++ {
		cat := distuv.Categorical{Weights: weights, Src: s.rng}
		idx := sampleIndex(cat.Rand(), n)
		if res := s.entries[idx].node.Update(w, e, bb); res != Fail {
			return res
		}
		weights[idx] = 0
	}
	return Fail
}

// sampleIndex clamps a sampled categorical draw to the valid index range,
// per the resolved rounding-overflow open question.
func sampleIndex(drawn float64, n int) int {
	idx := int(drawn)
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func expPositive(x float64) float64 {
	return math.Exp(x)
}

// InertialUtilitySelector behaves like UtilitySelector but adds a
// per-entry inertia bonus to the score before ranking, and updates the
// inertia state of whichever entry actually ran: the winner's inertia
// grows toward bonusAmount (sustaining its lead next tick), every other
// entry's inertia resets to zero, and a winner already in cooldown decays
// by cooldownAmount instead of re-bonusing.
type InertialUtilitySelector struct {
	UtilitySelector
	inertia        []float64
	bonusAmount    float64
	cooldownAmount float64
}

// NewInertialUtilitySelector returns an empty inertial selector using the
// original's bonus=100 / cooldown=10 defaults.
func NewInertialUtilitySelector() *InertialUtilitySelector {
	return &InertialUtilitySelector{bonusAmount: 100, cooldownAmount: 10}
}

// Add appends a (node, utility) pair, extending the inertia slice to match.
func (s *InertialUtilitySelector) Add(node Node, utility UtilityFunc) *InertialUtilitySelector {
	s.UtilitySelector.Add(node, utility)
	s.inertia = append(s.inertia, 0)
	return s
}

func (s *InertialUtilitySelector) Update(w world.World, e world.Entity, bb *world.Blackboard) Result {
	scores := s.scores(bb)
	for i := range scores {
		scores[i] += s.inertia[i]
	}
	order := rankDescending(scores)
	for _, idx := range order {
		if res := s.entries[idx].node.Update(w, e, bb); res != Fail {
			s.updateInertia(idx)
			return res
		}
	}
	return Fail
}

func (s *InertialUtilitySelector) updateInertia(winner int) {
	prev := s.inertia[winner]
	for i := range s.inertia {
		s.inertia[i] = 0
	}
	if prev > 0 {
		s.inertia[winner] = prev - s.cooldownAmount
	} else {
		s.inertia[winner] = prev + s.bonusAmount
	}
}
