package services

import "github.com/a1br4h33m/IMDB-Redesign/internal/client/session"

// Notifier receives state-change events emitted by the services. The view
// layer subscribes and renders; services never render anything themselves.
//
// SessionChanged fires after every session save or clear, with nil meaning
// logged out. TwoFAStateChanged fires after a confirmed two-factor toggle.
// Callbacks run synchronously on the calling goroutine.
type Notifier interface {
	SessionChanged(s *session.Session)
	TwoFAStateChanged(enabled bool)
}

// NopNotifier ignores all events.
type NopNotifier struct{}

func (NopNotifier) SessionChanged(*session.Session) {}
func (NopNotifier) TwoFAStateChanged(bool)          {}
