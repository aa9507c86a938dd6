package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublishDeliversInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := New(zaptest.NewLogger(t))
	var mu sync.Mutex
	var got []int
	done := make(chan struct{})

	b.Subscribe(EventSlideChanged, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(SlideChangedEvent).Index)
		if len(got) == 3 {
			close(done)
		}
	})

	for i := 0; i < 3; i++ {
		b.Publish(SlideChangedEvent{Carousel: "projects", Index: i})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("events were not delivered")
	}
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestUnsubscribe(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := New(nil)
	calls := 0
	unsubscribe := b.Subscribe(EventThemeChanged, func(DomainEvent) { calls++ })
	unsubscribe()

	b.Publish(ThemeChangedEvent{Mode: "dark", Resolved: "dark"})
	b.Close()

	assert.Zero(t, calls)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := New(zaptest.NewLogger(t))
	delivered := make(chan string, 1)

	b.Subscribe(EventRouteChanged, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventRouteChanged, func(e DomainEvent) { delivered <- e.(RouteChangedEvent).To })

	b.Publish(RouteChangedEvent{From: "/", To: "/easter"})

	select {
	case to := <-delivered:
		require.Equal(t, "/easter", to)
	case <-time.After(2 * time.Second):
		t.Fatal("second handler did not run after the first panicked")
	}
	b.Close()
}

func TestCloseDrainsQueuedEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := New(nil)
	var mu sync.Mutex
	count := 0
	b.Subscribe(EventLinkCopied, func(DomainEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	for i := 0; i < 10; i++ {
		b.Publish(LinkCopiedEvent{URL: "https://github.com/example"})
	}
	b.Close()
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 10, count)

	assert.NotPanics(t, func() { b.Publish(LinkCopiedEvent{}) }, "publishing after close is dropped")
}

func TestSetLoggerReplacesBootstrapLogger(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := New(nil)
	core, logs := observer.New(zapcore.DebugLevel)
	b.SetLogger(zap.New(core))

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Publish(ErrorEvent{Message: "x"})
	b.Close()

	assert.Equal(t, 1, logs.FilterMessage("event handler panic").Len())
	assert.Equal(t, 1, logs.FilterMessage("publishing event").Len())
}
