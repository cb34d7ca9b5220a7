package session

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// Scheduler is the host's animation-frame primitive.
type Scheduler interface {
	// RequestFrame queues fn for the next frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending request. Unknown ids are ignored.
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a cooperative Scheduler driven by the host calling Flush
// once per display refresh. It is not safe for concurrent use; hosts call
// it from their single update/draw goroutine.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Flush runs every callback that was pending when it was called and
// returns how many ran. Callbacks requested during the flush wait for the
// next one.
func (q *FrameQueue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, r := range batch {
		r.fn()
	}
	return len(batch)
}

// Pending reports the number of queued requests.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
