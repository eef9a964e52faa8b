// Package brain orchestrates named needs into a personality: each need
// registers under a motive tier whose weight reshapes its importance, and
// changes reach the rest of the graph only after a reaction delay scaled by
// that weight.
package brain

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/maxludovicohofer/act-by-belief/need"
	"github.com/maxludovicohofer/act-by-belief/react"
)

// MinImportance floors every tier's effective weight so no personality can
// weight a motive into oblivion.
const MinImportance = 0.01

// Config wires a Brain to its collaborators.
type Config struct {
	// Name identifies the owner in observer callbacks. Defaults to the
	// brain's generated id.
	Name string

	// Scheduler delivers debounced notifications. Required.
	Scheduler react.Scheduler

	// Reaction is the minimum delay between a need changing and the graph
	// hearing about it. Zero means immediate.
	Reaction time.Duration

	// Offsets perturb the tier weights one by one; len must equal
	// MotiveCount. When nil, offsets are drawn uniformly from
	// [-Chaos, Chaos] instead.
	Offsets []float64
	Chaos   float64

	// Rand drives chaos draws. nil falls back to the global source.
	Rand *rand.Rand

	// Observer hears about every value change of a registered need.
	// Optional.
	Observer Observer

	// Validate turns on range checking of offsets, chaos, reaction and
	// motives. Off, out-of-domain inputs are undefined behavior and the
	// checks cost nothing.
	Validate bool
}

// Brain registers named need beliefs under motive tiers, layering priority
// weighting and reaction-time debouncing on top of plain propagation. The
// weighting runs through each belief's reinterpret step, so a need's stored
// importance is already tier-adjusted and compares across tiers; the
// debouncing runs through each belief's notifier, keyed per need so rapid
// changes coalesce.
type Brain struct {
	id        string
	name      string
	scheduler react.Scheduler
	reaction  time.Duration
	weights   [MotiveCount]float64
	observer  Observer
	validate  bool

	needs  map[string]*entry
	probes map[string]func() any
}

type entry struct {
	belief *react.Belief[need.Need]
	motive Motive
	key    string
}

// New builds a Brain, drawing or adopting personality offsets and clamping
// each tier's effective weight into [MinImportance, 1]. A large offset can
// still push a lower tier into a higher tier's range; the hierarchy is soft
// on purpose.
func New(cfg Config) (*Brain, error) {
	if cfg.Scheduler == nil {
		return nil, fmt.Errorf("brain: scheduler is required")
	}
	if cfg.Validate {
		if cfg.Offsets != nil && len(cfg.Offsets) != int(MotiveCount) {
			return nil, fmt.Errorf("brain: got %d offsets for %d motives", len(cfg.Offsets), MotiveCount)
		}
		if cfg.Chaos < 0 {
			return nil, fmt.Errorf("brain: chaos %g must not be negative", cfg.Chaos)
		}
		if cfg.Reaction < 0 {
			return nil, fmt.Errorf("brain: reaction %s must not be negative", cfg.Reaction)
		}
	}

	b := &Brain{
		id:        uuid.NewString(),
		name:      cfg.Name,
		scheduler: cfg.Scheduler,
		reaction:  cfg.Reaction,
		observer:  cfg.Observer,
		validate:  cfg.Validate,
		needs:     map[string]*entry{},
		probes:    map[string]func() any{},
	}
	if b.name == "" {
		b.name = b.id
	}

	for m := Motive(0); m < MotiveCount; m++ {
		var offset float64
		switch {
		case int(m) < len(cfg.Offsets):
			offset = cfg.Offsets[m]
		case cfg.Chaos != 0:
			offset = draw(cfg.Rand) * cfg.Chaos
		}
		b.weights[m] = clampWeight(m.Weight() + offset)
	}
	return b, nil
}

// draw samples uniformly from [-1, 1].
func draw(r *rand.Rand) float64 {
	if r != nil {
		return r.Float64()*2 - 1
	}
	return rand.Float64()*2 - 1
}

func clampWeight(w float64) float64 {
	if w < MinImportance {
		return MinImportance
	}
	if w > 1 {
		return 1
	}
	return w
}

// Name returns the owner name used in observer callbacks.
func (b *Brain) Name() string {
	return b.name
}

// Weight returns the motive's effective weight for this brain, offsets and
// clamping applied.
func (b *Brain) Weight(m Motive) float64 {
	return b.weights[m]
}

// Need registers bel under name and motive, creating an always-urgent
// belief when bel is nil. Registration installs three things on the belief:
// a reinterpret step that rescales its intensity into a tier-adjusted
// importance, a debounced notifier with delay reaction/weight so lower
// tiers react more slowly, and the observer hook. Re-registering a name
// replaces its entry.
//
// The error is always nil unless validation is on.
func (b *Brain) Need(name string, bel *react.Belief[need.Need], m Motive) (*react.Belief[need.Need], error) {
	if b.validate && (m < 0 || m >= MotiveCount) {
		return nil, fmt.Errorf("brain: motive %d out of range", int(m))
	}
	if bel == nil {
		bel = react.New(func(*react.Signal) need.Need {
			return need.Urgent
		})
	}
	e := &entry{
		belief: bel,
		motive: m,
		key:    b.needKey(name),
	}
	b.needs[name] = e

	// Reinterpret goes last: it forces a recompute, which should already
	// report through the observer and fan out through the debounce.
	bel.OnChange(b.changed(name))
	bel.SetNotifier(b.notifier(e))
	bel.SetReinterpret(b.reweigh(m))
	return bel, nil
}

// reweigh scales intensity by the tier weight and rescales the intensifier
// to its inverse. Importance then carries the tier-adjusted urgency, in
// exact 2:1 ratio between adjacent tiers at zero offset, while the value
// stays well-formed.
func (b *Brain) reweigh(m Motive) func(need.Need) need.Need {
	return func(n need.Need) need.Need {
		w := b.weights[m]
		return need.Weighted(n.Intensity()*w, 1/w)
	}
}

func (b *Brain) notifier(e *entry) react.Notifier {
	if b.reaction == 0 {
		return react.Immediate()
	}
	delay := time.Duration(float64(b.reaction) / b.weights[e.motive])
	return react.Debounced(b.scheduler, e.key, delay)
}

func (b *Brain) changed(name string) func(need.Need) {
	if b.observer == nil {
		return nil
	}
	return func(n need.Need) {
		b.observer.BeliefChanged(b.name, name, n)
	}
}

// needKey is stable for the brain's lifetime and scoped by its id, so two
// brains sharing a scheduler never collide on same-named needs.
func (b *Brain) needKey(name string) string {
	return strconv.FormatUint(xxhash.Sum64String(b.id+"/"+name), 16)
}

// SetReactionTime rebuilds the notification strategy of every registered
// need. It governs subsequent changes only; a notification already in
// flight keeps its old schedule until superseded.
func (b *Brain) SetReactionTime(d time.Duration) error {
	if b.validate && d < 0 {
		return fmt.Errorf("brain: reaction %s must not be negative", d)
	}
	b.reaction = d
	for _, e := range b.needs {
		e.belief.SetNotifier(b.notifier(e))
	}
	return nil
}

// Reweight replaces one motive's personality offset, then rebuilds strategy
// and weighting for every need registered under it, recomputing their
// values under the new weight.
func (b *Brain) Reweight(m Motive, offset float64) error {
	if b.validate && (m < 0 || m >= MotiveCount) {
		return fmt.Errorf("brain: motive %d out of range", int(m))
	}
	b.weights[m] = clampWeight(m.Weight() + offset)
	for _, e := range b.needs {
		if e.motive != m {
			continue
		}
		e.belief.SetNotifier(b.notifier(e))
		e.belief.SetReinterpret(b.reweigh(m))
	}
	return nil
}

// Die tears down every registered need, detaching them from the graph, and
// empties the registry and probes.
func (b *Brain) Die() {
	b.Kill()
}

// Kill is Die plus teardown of externally owned beliefs the caller wants
// severed in the same sweep.
func (b *Brain) Kill(extra ...react.Node) {
	for _, e := range b.needs {
		e.belief.Die()
	}
	clear(b.needs)
	clear(b.probes)
	for _, n := range extra {
		if n != nil {
			n.Die()
		}
	}
}
