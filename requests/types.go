package requests

import (
	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// Stat request types.
const (
	TypeBus   = "Bus"
	TypeStop  = "Stop"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

// StatRequest is a single statistics or routing query.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required,oneof=Bus Stop Route Map"`
	Name string `json:"name,omitempty" validate:"required_if=Type Bus,required_if=Type Stop"`
	From string `json:"from,omitempty" validate:"required_if=Type Route"`
	To   string `json:"to,omitempty" validate:"required_if=Type Route"`
}

// Input is a decoded request document.
type Input struct {
	Batch    domain.Batch
	Settings *router.Settings   // nil when the document carries no routing settings
	Render   *renderer.Settings // nil when the document carries no render settings
	Stats    []StatRequest
}
