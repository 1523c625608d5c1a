package ws

import "encoding/json"

// envelope is the wire frame for both directions: a named event plus its
// payload.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinPayload struct {
	RoomID      string `json:"roomId"`
	DisplayName string `json:"displayName"`
}

type othelloMovePayload struct {
	RoomID string `json:"roomId"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

type puzzleMovePayload struct {
	RoomID        string `json:"roomId"`
	HandSlotIndex int    `json:"handSlotIndex"`
	Row           int    `json:"row"`
	Col           int    `json:"col"`
}
