// component/movement.go
package component

// Point — точка на поверхности рисования, в пикселях
type Point struct {
	X, Y float64
}

// EnergyWave — волна энергии от клика к центру
type EnergyWave struct {
	OriginX, OriginY float64
	TargetX, TargetY float64
	Progress         float64 // 0..1
	Speed            float64 // прирост Progress за кадр
	Amplitude        float64
	PhaseShift       float64
	Width            float64
	Hue              float64
	Lightness        float64 // 0..1
	Completed        bool
}

// ExplosionParticle — частица взрыва
type ExplosionParticle struct {
	X, Y      float64
	VX, VY    float64
	Size      float64
	Hue       float64
	Opacity   float64
	FadeSpeed float64
	Life      float64 // притяжение к центру действует, пока Life > 0.5
}
