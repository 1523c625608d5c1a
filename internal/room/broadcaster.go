package room

// Broadcaster is the transport primitive the manager relies on: fan a named
// event out to every connection in a room, or deliver it to a single
// connection. The websocket hub implements it.
type Broadcaster interface {
	Broadcast(roomID string, event string, data interface{})
	Send(connID string, event string, data interface{})
}
