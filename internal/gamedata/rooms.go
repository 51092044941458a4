package gamedata

import "github.com/gdamore/tcell/v2"

// RoomTemplate defines a kind of room the labyrinth can produce.
//
// Type is one of "empty", "enemy", "item" or "narrative". Directions holds
// movement names ("forward", "left", "right") and is ignored for enemy and
// item rooms.
type RoomTemplate struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Text        string   `json:"text"`
	Directions  []string `json:"directions,omitempty"`
	Color       string   `json:"color"`
	SpawnWeight int      `json:"spawnWeight"`
}

// TCellColor returns the room's text color as a tcell.Color.
func (r *RoomTemplate) TCellColor() tcell.Color {
	color, err := ParseHexColor(r.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// RoomsFile represents the structure of rooms.json.
type RoomsFile struct {
	Rooms []RoomTemplate `json:"rooms"`
}

// LoadRooms loads room templates from the embedded rooms.json file.
func LoadRooms() ([]RoomTemplate, error) {
	file, err := Load[RoomsFile]("rooms.json")
	if err != nil {
		return nil, err
	}
	return file.Rooms, nil
}
