package tui

import (
	"sync"
	"time"
)

// Ticker fires a callback at a fixed interval on its own goroutine until
// stopped. The callback is expected to hand work to the event loop.
type Ticker struct {
	interval time.Duration
	fire     func()
	stop     chan struct{}
	once     sync.Once
	done     chan struct{}
}

// NewTicker creates a stopped ticker
func NewTicker(interval time.Duration, fire func()) *Ticker {
	return &Ticker{
		interval: interval,
		fire:     fire,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins firing
func (t *Ticker) Start() {
	go func() {
		defer close(t.done)
		tk := time.NewTicker(t.interval)
		defer tk.Stop()
		for {
			select {
			case <-tk.C:
				select {
				case <-t.stop:
					return
				default:
				}
				t.fire()
			case <-t.stop:
				return
			}
		}
	}()
}

// Stop signals the goroutine to exit without waiting for it, so it may be
// called from the event loop while a fire is blocked queuing onto that loop.
// It is safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
}

// wait blocks until the goroutine started by Start has exited.
func (t *Ticker) wait() {
	<-t.done
}
