package services

import (
	"sync"

	"github.com/google/uuid"
)

// guard rejects overlapping invocations of the same action. The original
// front end issued duplicate requests on rapid repeated submits; here an
// action that is still in flight answers ErrBusy instead.
type guard struct {
	mu       sync.Mutex
	inflight map[string]string
}

func newGuard() *guard {
	return &guard{inflight: make(map[string]string)}
}

// begin reserves the action and returns an operation token used for log
// correlation, or ErrBusy when the action is already running.
func (g *guard) begin(action string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.inflight[action]; ok {
		return "", ErrBusy
	}
	op := uuid.NewString()
	g.inflight[action] = op
	return op, nil
}

func (g *guard) end(action string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, action)
}
