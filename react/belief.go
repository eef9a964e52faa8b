package react

import (
	"reflect"
)

// Node is the type-erased face of a belief: enough to wire edges and tear
// one down without knowing its value type.
type Node interface {
	Signal() *Signal
	Die()
}

// Belief owns exactly one Signal and derives a typed value from it. The
// stored value only ever comes out of the recompute pipeline: derive from
// the signal, reinterpret, compare against what was already there. Equal
// results are dropped without notifying anyone; changed results are stored
// synchronously and the notifier decides when subscribers hear about it.
//
// T is unconstrained and compared with reflect.DeepEqual, so beliefs can
// hold slices and structs, not just comparables.
type Belief[T any] struct {
	signal      *Signal
	value       T
	derive      func(*Signal) T
	reinterpret func(T) T
	notify      Notifier
	onChange    func(T)
}

// New builds a belief around derive and runs the first recompute with an
// empty sensed input. Whatever derive reads through Get during that pass
// becomes the initial influence set.
func New[T any](derive func(*Signal) T) *Belief[T] {
	b := &Belief[T]{
		signal: newSignal(),
		derive: derive,
	}
	b.signal.recompute = b.recompute
	b.recompute()
	return b
}

// Get reads target's value from inside a derivation and records that
// dependent is influenced by it. Edges accumulate as derivations actually
// read, so the topology follows whichever branches the current values take.
// Reading a dead target returns its last value but records nothing.
func Get[T any](dependent *Signal, target *Belief[T]) T {
	dependent.addInfluence(target.signal)
	return target.value
}

// Sense stores raw input on the signal and recomputes. This is the entry
// point for the outside world: sensors, user input, scripted events.
func (b *Belief[T]) Sense(data any) {
	b.signal.sensed = data
	b.recompute()
}

// Value returns the last computed value without touching the graph.
func (b *Belief[T]) Value() T {
	return b.value
}

// Signal exposes the node this belief owns.
func (b *Belief[T]) Signal() *Signal {
	return b.signal
}

// AddInfluence declares an edge without reading: the belief recomputes when
// other changes even though derive never calls Get on it.
func (b *Belief[T]) AddInfluence(other Node) {
	b.signal.addInfluence(other.Signal())
}

// RemoveInfluence drops a declared or discovered edge while both sides stay
// alive. Edges are never dropped any other way short of Die.
func (b *Belief[T]) RemoveInfluence(other Node) {
	b.signal.removeInfluence(other.Signal())
}

// SetReinterpret installs the transform applied to every derived value
// before storing, then recomputes so it takes effect on the current input
// state, not just the next change.
func (b *Belief[T]) SetReinterpret(fn func(T) T) {
	b.reinterpret = fn
	b.recompute()
}

// SetNotifier installs the strategy deciding when subscribers hear about a
// change. The stored value still updates synchronously on every recompute;
// only the fan-out moves. nil restores immediate fan-out.
func (b *Belief[T]) SetNotifier(fn Notifier) {
	b.notify = fn
}

// OnChange installs a hook called synchronously with every newly stored
// value, before the notifier runs. Direct readers of Value and this hook see
// fresh results immediately even while notification is delayed.
func (b *Belief[T]) OnChange(fn func(T)) {
	b.onChange = fn
}

// Die tears the belief out of the graph. See Signal.Die.
func (b *Belief[T]) Die() {
	b.signal.Die()
}

func (b *Belief[T]) recompute() {
	if b.signal.dead {
		return
	}
	next := b.derive(b.signal)
	if b.reinterpret != nil {
		next = b.reinterpret(next)
	}
	if reflect.DeepEqual(b.value, next) {
		return
	}
	b.value = next
	if b.onChange != nil {
		b.onChange(next)
	}
	if b.notify != nil {
		b.notify(b.signal.fire)
		return
	}
	b.signal.fire()
}
