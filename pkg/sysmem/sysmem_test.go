package sysmem

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/roffe/txplot/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	msgs map[string][]geom.Point
}

func (r *recorder) Publish(topic string, data geom.Point) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.msgs == nil {
		r.msgs = make(map[string][]geom.Point)
	}
	r.msgs[topic] = append(r.msgs[topic], data)
	return nil
}

func (r *recorder) get(topic string) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]geom.Point(nil), r.msgs[topic]...)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestSampleRetries(t *testing.T) {
	calls := 0
	read := func(context.Context) (Stats, error) {
		calls++
		if calls < 3 {
			return Stats{}, errors.New("busy")
		}
		return Stats{Total: 1000, Used: 250, UsedSwap: 5}, nil
	}
	clock := &fakeClock{t: time.Unix(100, 0)}
	rec := &recorder{}
	s := NewSampler(rec, 0, WithReadFunc(read), WithClock(clock.now))

	clock.t = clock.t.Add(1500 * time.Millisecond)
	require.NoError(t, s.Sample(context.Background()))
	assert.Equal(t, 3, calls)
	assert.Equal(t, []geom.Point{{X: 1.5, Y: 250}}, rec.get(TopicUsed))
	assert.Equal(t, []geom.Point{{X: 1.5, Y: 1000}}, rec.get(TopicTotal))
	assert.Equal(t, []geom.Point{{X: 1.5, Y: 5}}, rec.get(TopicUsedSwap))
}

func TestSampleGivesUp(t *testing.T) {
	read := func(context.Context) (Stats, error) {
		return Stats{}, errors.New("no /proc")
	}
	s := NewSampler(&recorder{}, 0, WithReadFunc(read))
	err := s.Sample(context.Background())
	assert.EqualError(t, err, "no /proc")
}

func TestRunRefresh(t *testing.T) {
	rec := &recorder{}
	s := NewSampler(rec, 0, WithReadFunc(func(context.Context) (Stats, error) {
		return Stats{Total: 10, Used: 1}, nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	s.Refresh()
	assert.Eventually(t, func() bool { return len(rec.get(TopicUsed)) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
