// internal/event/event.go
package event

// EventType — тип события симуляции.
type EventType string

// Event несёт тип события и его полезную нагрузку.
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронная шина событий симуляции. Слушатели
// вызываются в порядке подписки, в том же тике.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт пустую шину.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает слушателя на перечисленные типы событий.
func (d *Dispatcher) Subscribe(listener Listener, eventTypes ...EventType) {
	for _, eventType := range eventTypes {
		d.listeners[eventType] = append(d.listeners[eventType], listener)
	}
}

// Unsubscribe снимает подписку слушателя с перечисленных типов.
func (d *Dispatcher) Unsubscribe(listener Listener, eventTypes ...EventType) {
	for _, eventType := range eventTypes {
		subs := d.listeners[eventType]
		for i, l := range subs {
			if l == listener {
				d.listeners[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Dispatch доставляет событие всем подписчикам его типа. Срез
// слушателей копируется перед обходом: обработчик может подписываться
// и отписываться, не ломая текущую доставку.
func (d *Dispatcher) Dispatch(event Event) {
	subs := d.listeners[event.Type]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]Listener, len(subs))
	copy(snapshot, subs)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}
