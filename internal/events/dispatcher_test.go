package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryDispatcher_DeliversByType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []EventType
	d.Subscribe(EventLoginSucceeded, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventLoginSucceeded}))
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventLoginFailed}))
	assert.Equal(t, []EventType{EventLoginSucceeded}, got)
}

func TestInMemoryDispatcher_ContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")

	calls := 0
	d.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		calls++
		return boom
	})
	d.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventLoginFailed})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestInMemoryDispatcher_ConcurrentUse(t *testing.T) {
	d := NewInMemoryDispatcher()

	var mu sync.Mutex
	count := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.Subscribe(EventLoginThrottled, func(context.Context, Event) error {
				mu.Lock()
				count++
				mu.Unlock()
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_ = d.Publish(context.Background(), Event{Type: EventLoginThrottled})
		}()
	}
	wg.Wait()

	mu.Lock()
	before := count
	mu.Unlock()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventLoginThrottled}))
	mu.Lock()
	assert.Equal(t, before+8, count)
	mu.Unlock()
}
