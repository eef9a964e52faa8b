package brain

import (
	"fmt"
	"math"
)

// Motive is a priority tier ordering needs, most urgent first. Base weight
// halves per tier, a soft hierarchy: an unmet survival need outranks a
// safety need two to one before personality offsets shift the balance.
type Motive int

const (
	Survival Motive = iota
	Safety
	Belonging
	Esteem
	Purpose

	MotiveCount
)

var motiveNames = [MotiveCount]string{
	"survival",
	"safety",
	"belonging",
	"esteem",
	"purpose",
}

func (m Motive) String() string {
	if m < 0 || m >= MotiveCount {
		return fmt.Sprintf("motive(%d)", int(m))
	}
	return motiveNames[m]
}

// Weight is the tier's base priority factor before personality offsets.
func (m Motive) Weight() float64 {
	return math.Exp2(-float64(m))
}
