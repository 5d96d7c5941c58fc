// Package testutils holds helpers shared by the tests in this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Logf(string, ...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainTimeout bounds how long Drain waits for each item.
var DrainTimeout = time.Second

// Drain expects to receive data in order from ch, then expects
// ch to be closed. The producer may still be sending.
// It reports how many items matched before the first mismatch,
// timeout or early close.
func Drain[T any](t TestT, data []T, ch <-chan T) int {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return i
			}
			if !assert.Equal(t, datum, el) {
				return i
			}
		case <-time.After(DrainTimeout):
			t.Errorf("nothing received for %v, expecting i=%d %v", DrainTimeout, i, datum)
			return i
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-time.After(DrainTimeout):
		t.Errorf("at the end of draining, channel was not closed for %v", DrainTimeout)
	}
	return len(data)
}
