package react

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Signal is a node in the belief graph. It remembers the last raw sensed
// input, the ordered list of signals it currently reads from, and the set of
// signals reading from it. The owning belief installs recompute, which
// re-runs the derivation pipeline against this node.
//
// Cross-references between signals are non-owning. A signal never influences
// itself. Propagation is synchronous push: firing walks the subscriber set
// and recomputes each one on the spot, so a cyclic graph recurses without
// bound. Keeping the graph acyclic is the caller's job.
type Signal struct {
	sensed any

	// Influence edges appear while derivations evaluate and are never
	// pruned just because a later evaluation stopped reading a target.
	// Only removeInfluence or Die severs them.
	influences  []*Signal
	subscribers mapset.Set[*Signal]

	recompute func()
	dead      bool
}

func newSignal() *Signal {
	return &Signal{
		subscribers: mapset.NewSet[*Signal](),
	}
}

// Sensed returns the raw input last passed to Sense, typed. ok is false when
// nothing was sensed yet or the input has a different type.
func Sensed[V any](s *Signal) (V, bool) {
	v, ok := s.sensed.(V)
	return v, ok
}

// SensedOr returns the raw input last passed to Sense, or fallback when
// nothing was sensed yet or the input has a different type. Derivations use
// this for their seed pass, which runs before any sensor has pushed data.
func SensedOr[V any](s *Signal, fallback V) V {
	if v, ok := s.sensed.(V); ok {
		return v
	}
	return fallback
}

// addInfluence links target upstream of s. Adding twice is a no-op, as is a
// self-loop or either side being dead.
func (s *Signal) addInfluence(target *Signal) {
	if target == nil || target == s || s.dead || target.dead {
		return
	}
	for _, in := range s.influences {
		if in == target {
			return
		}
	}
	s.influences = append(s.influences, target)
	target.subscribers.Add(s)
}

// removeInfluence severs the edge to target on both sides. Unknown targets
// are a no-op.
func (s *Signal) removeInfluence(target *Signal) {
	for i, in := range s.influences {
		if in == target {
			s.influences = append(s.influences[:i], s.influences[i+1:]...)
			target.subscribers.Remove(s)
			return
		}
	}
}

// fire pushes the change to every current subscriber, synchronously.
// Subscriber order is unspecified. A diamond downstream of a change may
// therefore recompute once per incoming edge; it still settles on the value
// derived from the freshest inputs.
func (s *Signal) fire() {
	if s.dead {
		return
	}
	for _, sub := range s.subscribers.ToSlice() {
		sub.recompute()
	}
}

// Die takes the signal out of the graph for good: upstream signals forget
// it, then every subscriber drops the dead edge and recomputes against the
// smaller influence set. By the time Die returns no reference survives on
// either side. A dead signal refuses new edges and never fires again;
// sensing its belief becomes inert.
func (s *Signal) Die() {
	if s.dead {
		return
	}
	s.dead = true

	for _, in := range s.influences {
		in.subscribers.Remove(s)
	}
	s.influences = nil

	subs := s.subscribers.ToSlice()
	s.subscribers.Clear()
	for _, sub := range subs {
		sub.removeInfluence(s)
		sub.recompute()
	}
}
