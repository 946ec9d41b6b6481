package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type captureListener struct {
	got []Event
}

func (l *captureListener) OnEvent(e Event) {
	l.got = append(l.got, e)
}

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	listener := &captureListener{}
	d.Subscribe(listener, EnemyKilled)

	d.Dispatch(Event{Type: EnemyKilled, Data: KillInfo{ID: 7, Reward: 5}})
	d.Dispatch(Event{Type: EnemyLeaked, Data: nil})

	assert.Len(t, listener.got, 1)
	assert.Equal(t, KillInfo{ID: 7, Reward: 5}, listener.got[0].Data)
}

func TestDispatcherMultiTypeSubscribe(t *testing.T) {
	d := NewDispatcher()
	listener := &captureListener{}
	d.Subscribe(listener, WaveStarted, WaveEnded)

	d.Dispatch(Event{Type: WaveStarted, Data: 1})
	d.Dispatch(Event{Type: WaveEnded, Data: 1})
	d.Dispatch(Event{Type: EnemySpawned, Data: nil})

	assert.Len(t, listener.got, 2)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	listener := &captureListener{}
	d.Subscribe(listener, WaveStarted, WaveEnded)
	d.Unsubscribe(listener, WaveStarted)

	d.Dispatch(Event{Type: WaveStarted, Data: 1})
	d.Dispatch(Event{Type: WaveEnded, Data: 1})

	assert.Len(t, listener.got, 1)
	assert.Equal(t, WaveEnded, listener.got[0].Type)
}

// oneShotListener отписывается от события прямо из обработчика.
type oneShotListener struct {
	dispatcher *Dispatcher
	fired      int
}

func (l *oneShotListener) OnEvent(e Event) {
	l.fired++
	l.dispatcher.Unsubscribe(l, e.Type)
}

func TestDispatcherUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	first := &oneShotListener{dispatcher: d}
	second := &captureListener{}
	d.Subscribe(first, WaveStarted)
	d.Subscribe(second, WaveStarted)

	// Отписка из обработчика не ломает текущую доставку.
	d.Dispatch(Event{Type: WaveStarted, Data: 1})
	assert.Equal(t, 1, first.fired)
	assert.Len(t, second.got, 1)

	d.Dispatch(Event{Type: WaveStarted, Data: 2})
	assert.Equal(t, 1, first.fired)
	assert.Len(t, second.got, 2)
}
