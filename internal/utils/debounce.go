package utils

import (
	"sync"
	"time"
)

// Debouncer provides a way to debounce function calls
type Debouncer struct {
	mutex sync.Mutex
	timer *time.Timer
}

// Debounce calls fn once duration has passed without another Debounce call,
// canceling any previous pending call. fn runs on its own goroutine.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}

// Stop cancels a pending call, if any.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
