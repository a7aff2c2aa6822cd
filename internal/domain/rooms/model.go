package rooms

import "time"

// Room es un recinto del zoo. No guarda ocupantes ni favoritos:
// esas relaciones se derivan consultando los Animal.
type Room struct {
	ID    string
	Title string

	CreatedAt time.Time
	UpdatedAt *time.Time // nil hasta la primera modificación
}
