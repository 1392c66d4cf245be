// internal/interfaces/presenter.go
package interfaces

import "cosmic-timeline/internal/component"

// Surface is the full-window drawing area the reveal runs on.
type Surface interface {
	Size() (width, height int)
}

// Presenter is the set of UI collaborators the controller drives. It never
// reads controller state back; everything flows one way.
type Presenter interface {
	ShowInstruction(visible bool)
	SetEnergy(percent int)
	ShowEnergy(visible bool)
	ShowClose(visible bool)
	ShowCore(visible bool)
	SetCoreSize(diameter float64)
	SetContentActive(active bool)
	SetMask(mask component.Mask)
	Flash(on bool)
}
