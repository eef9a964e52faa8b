// Package need models felt urgency as a bounded scalar with a small algebra
// for combining, ramping, and weighing urgencies against each other.
package need

import (
	"fmt"
	"math"
)

// Need pairs an importance with an intensifier. Importance is the comparable
// magnitude and ranges over [0, 1/intensifier]; intensity is their product,
// inside [0, 1] for well-formed values. Splitting the two lets needs with
// different normalization ceilings still rank consistently: comparison runs
// on importance, final weighing on intensity.
//
// Needs are immutable. Every operation returns a new value.
type Need struct {
	importance  float64
	intensifier float64
}

// Anchor points of the scale.
var (
	Absent = Need{importance: 0, intensifier: 1}
	Normal = Need{importance: 0.5, intensifier: 1}
	Urgent = Need{importance: 1, intensifier: 1}
)

// New returns a need of the given importance with a neutral intensifier.
func New(importance float64) Need {
	return Need{importance: importance, intensifier: 1}
}

// Weighted returns a need with both components set. Nothing is validated;
// use Checked when the inputs come from config or tuning data.
func Weighted(importance, intensifier float64) Need {
	return Need{importance: importance, intensifier: intensifier}
}

// Checked is Weighted plus range validation.
func Checked(importance, intensifier float64) (Need, error) {
	n := Weighted(importance, intensifier)
	if err := n.Validate(); err != nil {
		return Need{}, err
	}
	return n, nil
}

// Validate reports whether the need is well formed: importance inside
// [0, 1/intensifier], which keeps intensity inside [0, 1].
func (n Need) Validate() error {
	if n.intensifier <= 0 {
		return fmt.Errorf("need: intensifier %g must be positive", n.intensifier)
	}
	if n.importance < 0 || n.importance > 1/n.intensifier {
		return fmt.Errorf("need: importance %g outside [0, %g]", n.importance, 1/n.intensifier)
	}
	return nil
}

func (n Need) Importance() float64 { return n.importance }

func (n Need) Intensifier() float64 { return n.intensifier }

// Intensity is importance scaled by the intensifier, the normalized urgency
// in [0, 1] for well-formed needs.
func (n Need) Intensity() float64 {
	return n.importance * n.intensifier
}

// Sub lowers n by other's importance, floored at zero, keeping n's
// intensifier. Never goes negative.
func (n Need) Sub(other Need) Need {
	return Need{
		importance:  max(n.importance-other.importance, 0),
		intensifier: n.intensifier,
	}
}

// Add sums the two intensities into a plain scalar. The result is not a
// Need: stacked urgencies may exceed the scale.
func (n Need) Add(other Need) float64 {
	return n.Intensity() + other.Intensity()
}

// Max returns the more important need, other when tied.
func (n Need) Max(other Need) Need {
	if n.importance > other.importance {
		return n
	}
	return other
}

// Min returns the less important need, other when tied.
func (n Need) Min(other Need) Need {
	if n.importance < other.importance {
		return n
	}
	return other
}

// Average blends needs component-wise: mean of importances, mean of
// intensifiers, so the combined intensity stays well-formed. No needs at all
// average to Absent.
func Average(needs ...Need) Need {
	if len(needs) == 0 {
		return Absent
	}
	var imp, intens float64
	for _, n := range needs {
		imp += n.importance
		intens += n.intensifier
	}
	count := float64(len(needs))
	return Need{
		importance:  imp / count,
		intensifier: intens / count,
	}
}

// All is Average under the name callers reach for when blending every
// sub-need of a concern.
func All(needs ...Need) Need {
	return Average(needs...)
}

// Far ramps urgency with distance from target: zero at the target itself,
// Urgent at maxDistance or beyond.
func Far(target, current, maxDistance float64) Need {
	d := math.Abs(target - current)
	if d >= maxDistance {
		return Urgent
	}
	return New(d / maxDistance)
}

// Near is the complement of Far: Urgent on the target, Absent once the
// distance reaches maxDistance.
func Near(target, current, maxDistance float64) Need {
	return Urgent.Sub(Far(target, current, maxDistance))
}

// WhenIncreasing ramps urgency linearly with a rising reading: floor maps to
// zero, peak to Urgent. Clamped at zero from below; readings past peak keep
// climbing.
func WhenIncreasing(value, peak, floor float64) Need {
	return New(max((value-floor)/(peak-floor), 0))
}

// WhenDecreasing is the inverted ramp: peak maps to zero, floor to Urgent.
func WhenDecreasing(value, peak, floor float64) Need {
	return New(max((peak-value)/(peak-floor), 0))
}

func (n Need) String() string {
	return fmt.Sprintf("%gx%g", n.importance, n.intensifier)
}
