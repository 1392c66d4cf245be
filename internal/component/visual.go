package component

import "fmt"

// Phase is the stage of the reveal sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCollecting
	PhaseGrowingCore
	PhaseExploding
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCollecting:
		return "collecting"
	case PhaseGrowingCore:
		return "growing-core"
	case PhaseExploding:
		return "exploding"
	case PhaseComplete:
		return "complete"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Shockwave is the expanding ring spawned when the core explodes.
type Shockwave struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Speed     float64
	Opacity   float64
}

// Mask describes the circular region of the content layer that is visible.
type Mask struct {
	CenterX, CenterY float64
	Radius           float64
}

// String renders the mask the way a CSS clip-path would spell it.
func (m Mask) String() string {
	return fmt.Sprintf("circle(%gpx at %gpx %gpx)", m.Radius, m.CenterX, m.CenterY)
}
