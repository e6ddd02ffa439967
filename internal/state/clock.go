package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// session identifies one canvas instance and numbers the presses it handles.
type session struct {
	id  string
	seq uint64
}

func newSession() *session {
	return &session{id: uuid.NewString()}
}

func (s *session) next() uint64 {
	return atomic.AddUint64(&s.seq, 1)
}

// short is the first block of the UUID, used as a log prefix.
func (s *session) short() string {
	if len(s.id) < 8 {
		return s.id
	}
	return s.id[:8]
}
