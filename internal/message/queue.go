package message

import (
	"errors"
	"sync"
)

// ErrQueueClosed is returned when posting to a closed queue.
var ErrQueueClosed = errors.New("message queue closed")

// DefaultQueueSize bounds the inbound buffer.
const DefaultQueueSize = 256

// Queue is the single inbound channel feeding the UI. Many goroutines may
// post; only the UI consumes.
type Queue struct {
	ch   chan Inbound
	done chan struct{}
	once sync.Once
}

// NewQueue creates a queue with the given buffer size.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Inbound, size), done: make(chan struct{})}
}

// Post enqueues msg, blocking while the buffer is full. It fails once the
// queue has been closed.
func (q *Queue) Post(msg Inbound) error {
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}
	select {
	case q.ch <- msg:
		return nil
	case <-q.done:
		return ErrQueueClosed
	}
}

// TryPost enqueues msg without blocking and reports whether it was accepted.
func (q *Queue) TryPost(msg Inbound) bool {
	select {
	case <-q.done:
		return false
	default:
	}
	select {
	case q.ch <- msg:
		return true
	default:
		return false
	}
}

// TryReceive returns the next message without blocking.
func (q *Queue) TryReceive() (Inbound, bool) {
	select {
	case msg := <-q.ch:
		return msg, true
	default:
		return nil, false
	}
}

// Receive blocks for the next message. ok is false once the queue is closed
// and drained.
func (q *Queue) Receive() (Inbound, bool) {
	select {
	case msg := <-q.ch:
		return msg, true
	default:
	}
	select {
	case msg := <-q.ch:
		return msg, true
	case <-q.done:
		select {
		case msg := <-q.ch:
			return msg, true
		default:
			return nil, false
		}
	}
}

// Close stops accepting new messages and wakes blocked receivers. It is safe
// to call more than once.
func (q *Queue) Close() {
	q.once.Do(func() { close(q.done) })
}

// Len reports the number of buffered messages.
func (q *Queue) Len() int {
	return len(q.ch)
}
