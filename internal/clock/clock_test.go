package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestVirtualFiresInDueOrder(t *testing.T) {
	v := NewVirtual(epoch)
	var fired []string

	v.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "c") })
	v.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	v.AfterFunc(200*time.Millisecond, func() { fired = append(fired, "b") })
	require.Equal(t, 3, v.Pending())

	v.Advance(250 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, v.Pending())
	assert.Equal(t, epoch.Add(250*time.Millisecond), v.Now())

	v.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Zero(t, v.Pending())
}

func TestVirtualFiresTimersScheduledByCallbacks(t *testing.T) {
	v := NewVirtual(epoch)
	count := 0
	var tick func()
	tick = func() {
		count++
		v.AfterFunc(time.Second, tick)
	}
	v.AfterFunc(time.Second, tick)

	v.Advance(3 * time.Second)
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, v.Pending())
}

func TestVirtualStop(t *testing.T) {
	v := NewVirtual(epoch)
	fired := false
	timer := v.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing was stopped")

	v.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Zero(t, v.Pending())
}

func TestVirtualStopAfterFire(t *testing.T) {
	v := NewVirtual(epoch)
	timer := v.AfterFunc(time.Second, func() {})
	v.Advance(time.Second)
	assert.False(t, timer.Stop())
}

func TestQueuedDeliversOnChannel(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := NewQueued(4, nil)
	ran := make(chan struct{}, 1)
	q.AfterFunc(5*time.Millisecond, func() { ran <- struct{}{} })

	select {
	case fn := <-q.C():
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("queued callback was never delivered")
	}

	select {
	case <-ran:
	default:
		t.Fatal("delivered callback did not run the scheduled func")
	}
}

func TestQueuedStopAfterDeliverySuppressesCallback(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := NewQueued(4, nil)
	ran := false
	timer := q.AfterFunc(time.Millisecond, func() { ran = true })

	var fn func()
	select {
	case fn = <-q.C():
	case <-time.After(2 * time.Second):
		t.Fatal("queued callback was never delivered")
	}

	require.True(t, timer.Stop(), "stop before the owner runs the callback counts as stopped")
	fn()
	assert.False(t, ran)
}

func TestQueuedStopBeforeFire(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := NewQueued(1, nil)
	timer := q.AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())

	select {
	case <-q.C():
		t.Fatal("stopped timer must not deliver")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestRealStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	timer := Real{}.AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())
}
