package sysmem

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/roffe/txplot/pkg/geom"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	TopicUsed     = "mem.used"
	TopicTotal    = "mem.total"
	TopicUsedSwap = "mem.swap.used"
)

type Stats struct {
	Total    uint64
	Used     uint64
	UsedSwap uint64
}

type ReadFunc func(ctx context.Context) (Stats, error)

// Read returns the current memory statistics of the host.
func Read(ctx context.Context) (Stats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("virtual memory: %w", err)
	}
	st := Stats{Total: vm.Total, Used: vm.Used}
	if sw, err := mem.SwapMemoryWithContext(ctx); err == nil {
		st.UsedSwap = sw.Used
	}
	return st, nil
}

type Publisher interface {
	Publish(topic string, data geom.Point) error
}

// Sampler reads memory on every tick or Refresh and publishes each value as
// a point whose X is the seconds elapsed since the sampler was created.
type Sampler struct {
	pub      Publisher
	interval time.Duration
	read     ReadFunc
	start    time.Time
	now      func() time.Time
	refresh  chan struct{}
}

type SamplerOpt func(*Sampler)

func WithReadFunc(f ReadFunc) SamplerOpt {
	return func(s *Sampler) {
		s.read = f
	}
}

func WithClock(now func() time.Time) SamplerOpt {
	return func(s *Sampler) {
		s.now = now
	}
}

func NewSampler(pub Publisher, interval time.Duration, opts ...SamplerOpt) *Sampler {
	s := &Sampler{
		pub:      pub,
		interval: interval,
		read:     Read,
		now:      time.Now,
		refresh:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.start = s.now()
	return s
}

// Refresh asks for an immediate sample without blocking.
func (s *Sampler) Refresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Run samples until ctx is done. An interval of zero only samples on Refresh.
func (s *Sampler) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if s.interval > 0 {
		t := time.NewTicker(s.interval)
		defer t.Stop()
		tick = t.C
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		case <-s.refresh:
		}
		if err := s.Sample(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("memory sample failed: %v", err)
		}
	}
}

// Sample reads once, retrying transient failures, and publishes the result.
func (s *Sampler) Sample(ctx context.Context) error {
	var st Stats
	err := retry.Do(
		func() error {
			var err error
			st, err = s.read(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return err
	}
	elapsed := float32(s.now().Sub(s.start).Seconds())
	for _, v := range []struct {
		topic string
		value uint64
	}{
		{TopicTotal, st.Total},
		{TopicUsed, st.Used},
		{TopicUsedSwap, st.UsedSwap},
	} {
		if err := s.pub.Publish(v.topic, geom.NewPoint(elapsed, float32(v.value))); err != nil {
			return err
		}
	}
	return nil
}
