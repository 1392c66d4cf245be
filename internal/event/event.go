// internal/event/event.go
package event

import "reflect"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       uint64
	listener Listener
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие. Возвращает функцию отписки, которая
// работает и для ListenerFunc (функции нельзя сравнивать).
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) func() {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() {
		d.remove(eventType, func(s subscription) bool { return s.id == id })
	}
}

// Unsubscribe — отписка по значению слушателя. Несравнимые слушатели
// (ListenerFunc) так не найти, для них есть функция из Subscribe.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return
	}
	d.remove(eventType, func(s subscription) bool {
		return reflect.TypeOf(s.listener).Comparable() && s.listener == listener
	})
}

// remove убирает первую подходящую подписку. Срез строится заново, чтобы
// не портить идущий Dispatch.
func (d *Dispatcher) remove(eventType EventType, match func(subscription) bool) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if match(s) {
			kept := make([]subscription, 0, len(subs)-1)
			kept = append(kept, subs[:i]...)
			d.listeners[eventType] = append(kept, subs[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам. Nil-диспетчер ничего не делает.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}
