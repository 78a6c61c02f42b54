package container

import (
	"github.com/eapache/queue"

	"go.llib.dev/cursorkit/pkg/cursor"
	"go.llib.dev/cursorkit/pkg/optional"
)

// Queue is a FIFO ring buffer exposed as a Container.
//
// Cursors of a Queue refer to positions, counted from the head.
// Popping an element shifts every position, which invalidates existing cursors.
type Queue[T any] struct {
	q *queue.Queue
}

func NewQueue[T any](vs ...T) *Queue[T] {
	q := &Queue[T]{q: queue.New()}
	for _, v := range vs {
		q.Push(v)
	}
	return q
}

// Push appends v to the tail of the queue.
func (q *Queue[T]) Push(v T) { q.q.Add(v) }

// Pop removes the element at the head of the queue.
func (q *Queue[T]) Pop() optional.Value[T] {
	if q.q.Length() == 0 {
		return optional.Empty[T]()
	}
	return optional.Of(q.q.Remove().(T))
}

// Peek returns the element at the head of the queue without removing it.
func (q *Queue[T]) Peek() optional.Value[T] {
	if q.q.Length() == 0 {
		return optional.Empty[T]()
	}
	return optional.Of(q.q.Peek().(T))
}

func (q *Queue[T]) Begin() QueueCursor[T] { return QueueCursor[T]{q: q.q, pos: 0} }

func (q *Queue[T]) End() QueueCursor[T] { return QueueCursor[T]{q: q.q, pos: q.q.Length()} }

func (q *Queue[T]) Len() int { return q.q.Length() }

// Range returns a view of the current elements of the queue.
func (q *Queue[T]) Range() Range[QueueCursor[T], T] { return Make(q.Begin(), q.End()) }

// QueueCursor is a random access cursor over a Queue.
type QueueCursor[T any] struct {
	q   *queue.Queue
	pos int
}

func (i QueueCursor[T]) Deref() T {
	if err := i.Check(); err != nil {
		panic(err)
	}
	return i.q.Get(i.pos).(T)
}

func (i QueueCursor[T]) Equal(o QueueCursor[T]) bool { return i.pos == o.pos }

func (i QueueCursor[T]) Next() QueueCursor[T] { return QueueCursor[T]{q: i.q, pos: i.pos + 1} }

func (i QueueCursor[T]) Prev() QueueCursor[T] { return QueueCursor[T]{q: i.q, pos: i.pos - 1} }

func (i QueueCursor[T]) Offset(n int) QueueCursor[T] { return QueueCursor[T]{q: i.q, pos: i.pos + n} }

func (i QueueCursor[T]) Diff(o QueueCursor[T]) int { return i.pos - o.pos }

func (i QueueCursor[T]) Check() error {
	if i.q == nil || i.pos < 0 || i.q.Length() <= i.pos {
		return cursor.ErrInvalidIterator.F("queue cursor at %d is outside of the queue", i.pos)
	}
	return nil
}
