package services

import (
	"Stocked/internal/realtime"
)

// Broadcaster pushes change events to subscribed clients. Satisfied by
// *realtime.Hub.
type Broadcaster interface {
	Broadcast(event realtime.Event)
}
