package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder is a TestT that keeps failures to itself.
type recorder struct {
	errors []string
}

func (r *recorder) Logf(string, ...any) {}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func produce(xs ...int) <-chan int {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for _, x := range xs {
			ch <- x
		}
	}()
	return ch
}

func TestDrain(t *testing.T) {
	r := &recorder{}
	assert.Equal(t, 3, Drain(r, []int{1, 2, 3}, produce(1, 2, 3)))
	assert.Empty(t, r.errors)
}

func TestDrain_ClosedEarly(t *testing.T) {
	r := &recorder{}
	assert.Equal(t, 1, Drain(r, []int{1, 2}, produce(1)))
	assert.Len(t, r.errors, 1)
}

func TestDrain_Leftover(t *testing.T) {
	r := &recorder{}
	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)

	assert.Equal(t, 1, Drain(r, []int{1}, ch))
	assert.Len(t, r.errors, 1)
}

func TestDrain_Timeout(t *testing.T) {
	old := DrainTimeout
	DrainTimeout = 10 * time.Millisecond
	defer func() {
		DrainTimeout = old
	}()

	r := &recorder{}
	assert.Equal(t, 0, Drain(r, []int{1}, make(chan int)))
	assert.Len(t, r.errors, 1)
}
