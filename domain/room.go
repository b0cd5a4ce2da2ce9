package domain

import (
	"time"
)

// Room metadata. The owner is always a current member; a room with zero
// members does not exist.
type Room struct {
	RoomID    string
	OwnerID   string
	CreatedAt time.Time
}

// RoomEntry is one member row of a summary: identity, display name and
// current presence.
type RoomEntry struct {
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
	Online   bool   `json:"online"`
}

// RoomSummary is a derived read-only view over membership, nicknames and
// presence. It is recomputed on every read, never persisted.
// Entries are sorted by user id ascending. AutoDeleteAt is nil when the
// room has no recorded activity or auto deletion is disabled.
type RoomSummary struct {
	RoomID       string      `json:"roomId"`
	OwnerID      string      `json:"ownerId"`
	Entries      []RoomEntry `json:"entries"`
	AutoDeleteAt *time.Time  `json:"autoDeleteAt,omitempty"`
}
