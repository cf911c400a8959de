// Implements the CallQueue, which holds the arrival steps of all calls
// waiting for an agent. Calls are enqueued on arrival.

package sim

import (
	"fmt"
	"strings"
)

// CallQueue is the FIFO backlog of calls awaiting an idle agent. Each entry
// is the step at which the call arrived; wait time is the difference between
// the assignment step and that entry. The queue is never reordered.
type CallQueue struct {
	calls []int // arrival steps, front at index 0
}

// Enqueue adds a call's arrival step to the back of the queue.
func (cq *CallQueue) Enqueue(arrivalStep int) {
	cq.calls = append(cq.calls, arrivalStep)
}

// Dequeue removes and returns the earliest-arrived call's arrival step.
// The second return value is false if the queue is empty.
func (cq *CallQueue) Dequeue() (int, bool) {
	if len(cq.calls) == 0 {
		return 0, false
	}
	front := cq.calls[0]
	cq.calls = cq.calls[1:]
	return front, true
}

// Peek returns the front arrival step without removing it.
// The second return value is false if the queue is empty.
func (cq *CallQueue) Peek() (int, bool) {
	if len(cq.calls) == 0 {
		return 0, false
	}
	return cq.calls[0], true
}

// Len returns the number of waiting calls.
func (cq *CallQueue) Len() int {
	return len(cq.calls)
}

func (cq *CallQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, step := range cq.calls {
		sb.WriteString(fmt.Sprint(step))
		if i < len(cq.calls)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
