// internal/event/types.go
package event

import "cosmic-timeline/internal/component"

const (
	PhaseChanged     EventType = "PhaseChanged"     // Фаза анимации сменилась
	TimelineRevealed EventType = "TimelineRevealed" // Таймлайн полностью открыт
	TimelineHidden   EventType = "TimelineHidden"   // Таймлайн скрыт навигацией
)

// PhaseChange — данные события PhaseChanged
type PhaseChange struct {
	From, To component.Phase
}
