package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-kingshot/internal/defs"
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(typ event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func (r *recorder) last(t *testing.T, typ event.EventType) event.Event {
	t.Helper()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == typ {
			return r.events[i]
		}
	}
	require.Failf(t, "event not dispatched", "%s", typ)
	return event.Event{}
}

func newTestWorld(t *testing.T) (*entity.World, *event.Dispatcher, *recorder) {
	t.Helper()
	w := entity.NewWorld(defs.DefaultLevel())
	d := event.NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, event.AllTypes...)
	return w, d, r
}
