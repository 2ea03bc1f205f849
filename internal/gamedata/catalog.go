package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/officecrawl/internal/world"
)

// RoomDef describes how a terrain code is presented to the player.
type RoomDef struct {
	Code        string `json:"code"`        // Terrain code (e.g., "BR")
	Name        string `json:"name"`        // Display name (e.g., "Break Room")
	Description string `json:"description"` // Flavor text shown on entry
	Color       string `json:"color"`       // Hex color code for the map
}

// TCellColor returns the room color as a tcell.Color.
func (r RoomDef) TCellColor() tcell.Color {
	return ColorOr(r.Color, tcell.ColorGray)
}

// RoomsFile represents the structure of rooms.json.
type RoomsFile struct {
	Default RoomDef   `json:"default"`
	Rooms   []RoomDef `json:"rooms"`
}

// RoomCatalog maps terrain codes to room definitions.
type RoomCatalog struct {
	rooms    map[world.Code]RoomDef
	all      []RoomDef
	fallback RoomDef
}

// NewRoomCatalog creates a catalog. fallback is returned for unknown codes.
func NewRoomCatalog(rooms []RoomDef, fallback RoomDef) *RoomCatalog {
	catalog := &RoomCatalog{
		rooms:    make(map[world.Code]RoomDef, len(rooms)),
		all:      rooms,
		fallback: fallback,
	}
	for _, r := range rooms {
		catalog.rooms[world.Code(r.Code)] = r
	}
	return catalog
}

// LoadRoomCatalog loads a catalog from the embedded rooms.json.
func LoadRoomCatalog() (*RoomCatalog, error) {
	file, err := Load[RoomsFile]("rooms.json")
	if err != nil {
		return nil, err
	}
	if file.Default.Name == "" {
		return nil, errors.New("rooms.json has no default room")
	}
	return NewRoomCatalog(file.Rooms, file.Default), nil
}

// MustLoadRoomCatalog loads a catalog, panicking on error.
func MustLoadRoomCatalog() *RoomCatalog {
	catalog, err := LoadRoomCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Describe returns the definition for code. Unknown codes get the default room,
// so Describe never fails.
func (c *RoomCatalog) Describe(code world.Code) RoomDef {
	if r, ok := c.rooms[code]; ok {
		return r
	}
	return c.fallback
}

// Known returns true if code has its own definition.
func (c *RoomCatalog) Known(code world.Code) bool {
	_, ok := c.rooms[code]
	return ok
}

// All returns all room definitions, excluding the default.
func (c *RoomCatalog) All() []RoomDef {
	return c.all
}

// Count returns the number of defined rooms.
func (c *RoomCatalog) Count() int {
	return len(c.all)
}
