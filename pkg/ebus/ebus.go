package ebus

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/roffe/txplot/pkg/geom"
)

var ErrPublishFull = errors.New("publish channel full")

type Config struct {
	IncomingBuffer int
	ChannelBuffer  int
	CacheTTL       time.Duration
}

var DefaultConfig = &Config{
	IncomingBuffer: 100,
	ChannelBuffer:  50,
	CacheTTL:       time.Minute,
}

type Message struct {
	Topic string
	Data  geom.Point
}

// Controller fans samples out to per-topic subscribers. The last sample of
// each topic is kept for CacheTTL and replayed to new subscribers; a sample
// equal to the cached one is dropped.
type Controller struct {
	mu     sync.Mutex
	subs   map[string][]chan geom.Point
	closed bool

	incoming chan Message
	cache    *ttlcache.Cache[string, geom.Point]
	buffer   int

	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
}

func New(cfg *Config) *Controller {
	if cfg == nil {
		cfg = DefaultConfig
	}
	c := &Controller{
		subs:     make(map[string][]chan geom.Point),
		incoming: make(chan Message, cfg.IncomingBuffer),
		cache:    ttlcache.New[string, geom.Point](ttlcache.WithTTL[string, geom.Point](cfg.CacheTTL)),
		buffer:   cfg.ChannelBuffer,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go c.run()
	return c
}

func (e *Controller) run() {
	defer close(e.done)
	for {
		select {
		case <-e.quit:
			e.cleanup()
			return
		case msg := <-e.incoming:
			e.handleMessage(msg)
		}
	}
}

func (e *Controller) handleMessage(msg Message) {
	if item := e.cache.Get(msg.Topic); item != nil && item.Value() == msg.Data {
		return
	}
	e.cache.Set(msg.Topic, msg.Data, ttlcache.DefaultTTL)

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, sub := range e.subs[msg.Topic] {
		select {
		case sub <- msg.Data:
		default:
			log.Printf("Channel full for topic %s", msg.Topic)
		}
	}
}

func (e *Controller) cleanup() {
	e.cache.DeleteAll()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	for topic, subs := range e.subs {
		for _, sub := range subs {
			close(sub)
		}
		delete(e.subs, topic)
	}
}

// Close stops the controller and closes every subscriber channel.
func (e *Controller) Close() {
	e.closeOnce.Do(func() {
		close(e.quit)
	})
	<-e.done
}

func (e *Controller) Publish(topic string, data geom.Point) error {
	select {
	case e.incoming <- Message{Topic: topic, Data: data}:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrPublishFull, topic)
	}
}

// Subscribe returns a channel receiving samples for topic. After Close the
// returned channel is already closed.
func (e *Controller) Subscribe(topic string) chan geom.Point {
	resp := make(chan geom.Point, e.buffer)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		close(resp)
		return resp
	}
	e.subs[topic] = append(e.subs[topic], resp)
	if item := e.cache.Get(topic); item != nil {
		select {
		case resp <- item.Value():
		default:
			log.Printf("Cache hit but channel full for topic %s", topic)
		}
	}
	return resp
}

// SubscribeFunc calls fn for every sample on topic until cancel is called.
func (e *Controller) SubscribeFunc(topic string, fn func(geom.Point)) (cancel func()) {
	select {
	case <-e.quit:
		return func() {}
	default:
	}
	resp := e.Subscribe(topic)
	go func() {
		for v := range resp {
			fn(v)
		}
	}()
	return func() {
		e.Unsubscribe(resp)
	}
}

func (e *Controller) Unsubscribe(channel chan geom.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for topic, subs := range e.subs {
		for i, sub := range subs {
			if sub != channel {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(e.subs, topic)
			} else {
				e.subs[topic] = subs
			}
			close(channel)
			return
		}
	}
}

// Last returns the cached sample for topic, if it has not expired.
func (e *Controller) Last(topic string) (geom.Point, bool) {
	item := e.cache.Get(topic)
	if item == nil {
		return geom.Point{}, false
	}
	return item.Value(), true
}
