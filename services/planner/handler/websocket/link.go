package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/internal/pkg/retry"
	pkgws "github.com/Taeppir/Link/internal/pkg/websocket"
	"github.com/gorilla/websocket"
)

const defaultOutboxSize = 64

// viewLink carries bridge commands to one connected map view. Commands are
// written in dispatch order by a single writer. Each one waits until the view
// has announced a handler for its kind and is dropped after the wait cap.
// When the outbox is full the newest SetWaypoints is parked in overflow and
// written once the outbox drains; other commands are dropped until then.
type viewLink struct {
	sessionID string
	conn      *websocket.Conn
	manager   *pkgws.Manager
	interval  time.Duration
	maxWait   time.Duration
	outbox    chan models.BridgeCommand
	wake      chan struct{}

	mu       sync.RWMutex
	handlers map[string]bool

	overflowMu sync.Mutex
	overflow   *models.BridgeCommand

	writeMu sync.Mutex
}

func newViewLink(client *models.ViewClient, manager *pkgws.Manager, cfg models.BridgeConfig) *viewLink {
	size := cfg.OutboxSize
	if size <= 0 {
		size = defaultOutboxSize
	}
	return &viewLink{
		sessionID: client.SessionID,
		conn:      client.Conn,
		manager:   manager,
		interval:  time.Duration(cfg.HandlerPollMs) * time.Millisecond,
		maxWait:   time.Duration(cfg.HandlerWaitMs) * time.Millisecond,
		outbox:    make(chan models.BridgeCommand, size),
		wake:      make(chan struct{}, 1),
		handlers:  make(map[string]bool),
	}
}

// Dispatch queues cmd for the writer. It never blocks the control loop.
func (l *viewLink) Dispatch(cmd models.BridgeCommand) {
	l.overflowMu.Lock()
	defer l.overflowMu.Unlock()

	if l.overflow == nil {
		select {
		case l.outbox <- cmd:
			return
		default:
		}
	}

	if cmd.Kind == models.CommandSetWaypoints {
		if l.overflow != nil {
			logger.Debug("Replacing parked waypoint snapshot", logger.SessionID(l.sessionID))
		}
		l.overflow = &cmd
		select {
		case l.wake <- struct{}{}:
		default:
		}
		return
	}

	logger.Warn("View outbox full, dropping command",
		logger.SessionID(l.sessionID),
		logger.Command(string(cmd.Kind)))
}

// takeOverflow returns the parked snapshot once every earlier command has been taken
func (l *viewLink) takeOverflow() (models.BridgeCommand, bool) {
	l.overflowMu.Lock()
	defer l.overflowMu.Unlock()

	if l.overflow == nil || len(l.outbox) > 0 {
		return models.BridgeCommand{}, false
	}
	cmd := *l.overflow
	l.overflow = nil
	return cmd, true
}

// announce records the command handlers the view has installed
func (l *viewLink) announce(names []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, name := range names {
		l.handlers[name] = true
	}
}

func (l *viewLink) hasHandler(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handlers[name]
}

// run writes queued commands until ctx is done
func (l *viewLink) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-l.outbox:
			l.deliver(ctx, cmd)
		case <-l.wake:
		}

		if cmd, ok := l.takeOverflow(); ok {
			l.deliver(ctx, cmd)
		}
	}
}

func (l *viewLink) deliver(ctx context.Context, cmd models.BridgeCommand) {
	kind := string(cmd.Kind)
	err := retry.Poll(ctx, l.interval, l.maxWait, func() bool { return l.hasHandler(kind) })
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("Dropping view command",
				logger.SessionID(l.sessionID),
				logger.Command(kind),
				logger.Duration("waited", l.maxWait),
				logger.Err(models.ErrBridgeTimeout))
		}
		return
	}

	if err := l.send(kind, cmd.Payload); err != nil {
		logger.Warn("Failed to write view command",
			logger.SessionID(l.sessionID),
			logger.Command(kind),
			logger.Err(err))
	}
}

func (l *viewLink) send(event string, data interface{}) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	return l.manager.SendMessage(l.conn, event, data)
}

func (l *viewLink) sendError(err error, code string, severity constants.ErrorSeverity) {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	if sendErr := l.manager.SendCategorizedError(l.conn, err, code, severity, l.sessionID); sendErr != nil {
		logger.Warn("Failed to write view error",
			logger.SessionID(l.sessionID),
			logger.Err(sendErr))
	}
}
