package iterator

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the sequence
// will be sent. It is closed once the sequence runs out or the
// iteration is stopped.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate streams a Sequence over a channel. Any iterator range
// becomes a Sequence through NewCursor, which is how containers in
// this module offer channel iteration (see binary.Tree.InOrderCoroutine):
//
//	co := iterator.CoIterate[T](iterator.NewCursor[T](first, last))
//	for x := range co.Items() {
//		... do stuff with x ...
//		if x meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// The goroutine started here exits when either Stop is called or the
// sequence is finished, so with the usage above it does not outlive
// the loop. A nil Sequence yields a closed channel and no goroutine.
//
// The cursor reads the container from the goroutine, so the container
// must not be modified until Items is closed. After Stop, that happens
// as soon as the goroutine notices.
func CoIterate[T any](s Sequence[T]) CoIterator[T] {
	items := make(chan T)
	stop := make(chan struct{})

	if s == nil {
		close(items)
	} else {
		go feed(s, items, stop)
	}

	return CoIterator[T]{
		items: items,
		stop:  stop,
	}
}

func feed[T any](s Sequence[T], items chan<- T, stop <-chan struct{}) {
	defer close(items)
	for s.Next() {
		select {
		case items <- s.Item():
		case <-stop:
			return
		}
	}
}
