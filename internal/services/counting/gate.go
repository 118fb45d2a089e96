package counting

import (
	"context"
	"sync"
)

// queueItem carries one request through the processing queue. Exactly
// one of input and reset is set.
type queueItem struct {
	ctx   context.Context
	input *HandleCountMessageInput
	reset *ResetCountInput

	// done receives the worker's answer. Buffered so the worker never
	// blocks handing back a result.
	done chan queueResult
}

// queueResult is the worker's answer for one queued request
type queueResult struct {
	output      *HandleCountMessageOutput
	resetOutput *ResetCountOutput
	err         error
}

// gate serializes game messages through a single worker so attempts
// are judged strictly in arrival order. Submitters wait on their
// item's done channel rather than on each other.
type gate struct {
	items chan *queueItem

	mu     sync.Mutex
	closed bool
}

func newGate(size int) *gate {
	return &gate{
		items: make(chan *queueItem, size),
	}
}

// submit queues a message for the worker. It never blocks: a full
// queue rejects the message instead of stalling the caller.
func (g *gate) submit(item *queueItem) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrShutdown
	}

	select {
	case g.items <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// close stops accepting new messages. Items already queued are still
// delivered to the worker.
func (g *gate) close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}

	g.closed = true
	close(g.items)
}
