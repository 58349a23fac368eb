package models

// CommandKind identifies an application-to-view command.
// The value doubles as the WebSocket event name.
type CommandKind string

const (
	CommandSetWaypoints     CommandKind = "set_waypoints"
	CommandToggleOverlay    CommandKind = "toggle_overlay"
	CommandSetInfo          CommandKind = "set_info"
	CommandClearInteractive CommandKind = "clear_interactive"
	CommandUndoInteractive  CommandKind = "undo_interactive"
)

// WaypointsPayload is the snapshot rendered by the map view
type WaypointsPayload struct {
	DepartTime string     `json:"depart_time"`
	Waypoints  []Waypoint `json:"waypoints"`
}

// OverlayPayload switches a map layer on or off
type OverlayPayload struct {
	Name string `json:"name"`
	On   bool   `json:"on"`
}

// InfoPayload is a short status line shown by the map view
type InfoPayload struct {
	Text string `json:"text"`
}

// BridgeCommand is a single command sent from the application to the map view
type BridgeCommand struct {
	Kind    CommandKind `json:"kind"`
	Payload interface{} `json:"payload,omitempty"`
}

// SetWaypoints builds a command that replaces the waypoints drawn by the view
func SetWaypoints(departTime string, snapshot Snapshot) BridgeCommand {
	wps := make([]Waypoint, len(snapshot))
	copy(wps, snapshot)
	return BridgeCommand{
		Kind:    CommandSetWaypoints,
		Payload: WaypointsPayload{DepartTime: departTime, Waypoints: wps},
	}
}

// ToggleOverlay builds a command that switches a map layer
func ToggleOverlay(name string, on bool) BridgeCommand {
	return BridgeCommand{Kind: CommandToggleOverlay, Payload: OverlayPayload{Name: name, On: on}}
}

// SetInfo builds a command that updates the view status line
func SetInfo(text string) BridgeCommand {
	return BridgeCommand{Kind: CommandSetInfo, Payload: InfoPayload{Text: text}}
}

// ClearInteractive builds a command that removes points drawn by the user in the view
func ClearInteractive() BridgeCommand {
	return BridgeCommand{Kind: CommandClearInteractive}
}

// UndoInteractive builds a command that removes the last point drawn by the user in the view
func UndoInteractive() BridgeCommand {
	return BridgeCommand{Kind: CommandUndoInteractive}
}

// BridgeEvent is a point the user added inside the map view
type BridgeEvent struct {
	Role  string  `json:"type"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"port"`
}

// HandlersAnnouncement lists the command handlers the view has installed
type HandlersAnnouncement struct {
	Names []string `json:"names"`
}
