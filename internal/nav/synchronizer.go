package nav

import (
	"log/slog"

	"github.com/davren/signpost/internal/history"
	"github.com/davren/signpost/internal/logging"
)

// Synchronizer re-resolves after user-driven history movement. It only
// listens: traversal already changed the current entry, so resolving is
// all that is left to do, and pushing here would corrupt the history.
type Synchronizer struct {
	ctrl  *Controller
	log   *slog.Logger
	bound bool
}

// NewSynchronizer returns an unbound synchronizer for the controller.
func NewSynchronizer(ctrl *Controller, log *slog.Logger) *Synchronizer {
	if log == nil {
		log = logging.NewNop()
	}
	return &Synchronizer{ctrl: ctrl, log: log}
}

// Bind subscribes to the history's movement signal. The subscription
// happens once for the lifetime of the synchronizer; further Bind calls
// do nothing, so movement can never trigger duplicate resolutions.
func (s *Synchronizer) Bind(h *history.Stack) {
	if s.bound {
		return
	}
	s.bound = true
	h.Subscribe(func(path string) {
		s.log.Debug("history moved", "path", path)
		if err := s.ctrl.Resolve(); err != nil {
			s.log.Error("resolve after history move failed", "path", path, "err", err)
		}
	})
}
