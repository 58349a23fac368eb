// Package bridge gates command delivery to the embedded map view behind the
// view's load-completion signal and relays points the user adds inside the view.
package bridge

import (
	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
)

// State is the readiness of the map view
type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Dispatcher delivers a command to the view. Delivery is fire-and-forget and
// must not block the caller.
type Dispatcher interface {
	Dispatch(cmd models.BridgeCommand)
}

// Bridge owns the readiness flag and the outgoing queue. It never touches
// waypoint state. Like the waypoint list it is driven from the control loop only.
type Bridge struct {
	dispatcher Dispatcher
	state      State
	queue      []models.BridgeCommand
	overlays   map[string]bool
	onPoint    func(models.BridgeEvent)
}

// New creates a bridge in the Loading state. overlays seeds the on/off state of
// every toggle-able layer; layers not present start off.
func New(dispatcher Dispatcher, overlays map[string]bool) *Bridge {
	b := &Bridge{
		dispatcher: dispatcher,
		state:      StateLoading,
		overlays:   make(map[string]bool, len(constants.Overlays)),
	}
	for _, name := range constants.Overlays {
		b.overlays[name] = overlays[name]
	}
	return b
}

// State returns the current readiness state
func (b *Bridge) State() State {
	return b.state
}

// Pending returns the number of commands waiting for the view to load
func (b *Bridge) Pending() int {
	return len(b.queue)
}

// Overlays returns a copy of the overlay state
func (b *Bridge) Overlays() map[string]bool {
	out := make(map[string]bool, len(b.overlays))
	for k, v := range b.overlays {
		out[k] = v
	}
	return out
}

// OnPointAdded registers the receiver of view point events
func (b *Bridge) OnPointAdded(fn func(models.BridgeEvent)) {
	b.onPoint = fn
}

// Send delivers cmd immediately when Ready, otherwise queues it
func (b *Bridge) Send(cmd models.BridgeCommand) {
	if cmd.Kind == models.CommandToggleOverlay {
		if p, ok := cmd.Payload.(models.OverlayPayload); ok {
			b.overlays[p.Name] = p.On
		}
	}

	if b.state != StateReady {
		b.queue = append(b.queue, cmd)
		logger.Debug("View not loaded, command queued",
			logger.Command(string(cmd.Kind)),
			logger.Int("pending", len(b.queue)))
		return
	}
	b.dispatcher.Dispatch(cmd)
}

// SetOverlay records and sends an overlay toggle
func (b *Bridge) SetOverlay(name string, on bool) {
	b.Send(models.ToggleOverlay(name, on))
}

// MarkReady performs the one-way Loading to Ready transition. The queue is
// drained in issue order, then every overlay state is re-sent.
func (b *Bridge) MarkReady() {
	if b.state == StateReady {
		return
	}
	b.state = StateReady

	queued := b.queue
	b.queue = nil
	for _, cmd := range queued {
		b.dispatcher.Dispatch(cmd)
	}

	for _, name := range constants.Overlays {
		b.dispatcher.Dispatch(models.ToggleOverlay(name, b.overlays[name]))
	}

	logger.Info("Map view ready",
		logger.Int("drained", len(queued)))
}

// ExpireLoading drops everything queued while the view failed to load in time.
// The bridge stays Loading; later commands queue again.
func (b *Bridge) ExpireLoading() int {
	if b.state == StateReady || len(b.queue) == 0 {
		return 0
	}
	dropped := len(b.queue)
	for _, cmd := range b.queue {
		logger.Warn("Dropping command for map view",
			logger.Command(string(cmd.Kind)),
			logger.Err(models.ErrBridgeTimeout))
	}
	b.queue = nil
	return dropped
}

// HandleEvent forwards a point event from the view unmodified. Events are only
// accepted once the view is Ready.
func (b *Bridge) HandleEvent(ev models.BridgeEvent) bool {
	if b.state != StateReady {
		logger.Warn("Point event before view load, ignored",
			logger.String("type", string(ev.Role)))
		return false
	}
	if b.onPoint == nil {
		return false
	}
	b.onPoint(ev)
	return true
}
