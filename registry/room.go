//go:generate go run go.uber.org/mock/mockgen -source=room.go -destination=../mocks/mock_room_registry.go -package=mocks
package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"chat-session-core/domain"
)

// IRoomRegistry is the single source of truth for room existence,
// ownership, membership, presence, nicknames and join tokens. Every
// compound operation executes as one atomic transaction against the
// shared store; no caller-side locking is required.
type IRoomRegistry interface {
	CreateRoom(ownerID string) (domain.Room, error)
	FindOwnerID(roomID string) (string, error)
	GetRoomSummary(roomID string) (*domain.RoomSummary, error)
	SaveJoinApproveToken(roomID, userID string) (bool, error)
	HasJoinApproveToken(roomID, userID string) (bool, error)
	RevokeJoinApproveToken(roomID, userID string) error
	FindMemberNickname(roomID, userID string) (string, error)
	AddMemberWithNickname(roomID, userID, nickname string) (bool, error)
	RemoveMember(roomID, userID string) (bool, error)
	FindMembers(roomID string) ([]string, error)
	FindOnlineMembers(roomID string) ([]string, error)
	FindRooms(userID string) ([]string, error)
	FindAllRooms() ([]string, error)
	IsMember(roomID, userID string) (bool, error)
	MarkOnline(roomID, userID string) (bool, error)
	MarkOffline(roomID, userID string) (bool, error)
	DeleteRoom(roomID string) error
	FindAutoDeleteAt(roomID string) (*time.Time, error)
	IsAutoDeleteDue(roomID string, now time.Time) (bool, error)
}

type RoomRegistry struct {
	db             *badger.DB
	log            *slog.Logger
	joinApproveTTL time.Duration
	autoDeleteTTL  time.Duration
}

func NewRoomRegistry(db *badger.DB, log *slog.Logger, joinApproveTTL, autoDeleteTTL time.Duration) *RoomRegistry {
	return &RoomRegistry{db: db, log: log, joinApproveTTL: joinApproveTTL, autoDeleteTTL: autoDeleteTTL}
}

type roomMeta struct {
	OwnerID   string `json:"ownerId"`
	CreatedAt int64  `json:"createdAt"`
}

// CreateRoom registers a new room owned by ownerID. The metadata write,
// the owner's join token, the activity timestamp and the global room set
// entry are committed in one transaction; an id collision fails the whole
// operation and leaves no partial state.
func (r *RoomRegistry) CreateRoom(ownerID string) (domain.Room, error) {
	if ownerID == "" {
		return domain.Room{}, fmt.Errorf("owner id required")
	}
	room := domain.Room{
		RoomID:    domain.NewID("room"),
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	meta, err := json.Marshal(roomMeta{OwnerID: room.OwnerID, CreatedAt: room.CreatedAt.UnixMilli()})
	if err != nil {
		return domain.Room{}, err
	}
	err = runUpdate(r.db, func(txn *badger.Txn) error {
		exists, err := keyExists(txn, roomMetaKey(room.RoomID))
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("room id collision: %s", room.RoomID)
		}
		if err := txn.Set(roomMetaKey(room.RoomID), meta); err != nil {
			return err
		}
		if r.joinApproveTTL > 0 {
			if err := r.writeJoinToken(txn, room.RoomID, ownerID); err != nil {
				return err
			}
		}
		if err := touchRoom(txn, room.RoomID, room.CreatedAt); err != nil {
			return err
		}
		return txn.Set(allRoomsKey(room.RoomID), setMarker)
	})
	if err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

// FindOwnerID returns the room's owner, or "" when the room is absent.
func (r *RoomRegistry) FindOwnerID(roomID string) (string, error) {
	if roomID == "" {
		return "", nil
	}
	var ownerID string
	err := r.db.View(func(txn *badger.Txn) error {
		meta, err := r.readMeta(txn, roomID)
		if err != nil {
			return err
		}
		if meta != nil {
			ownerID = meta.OwnerID
		}
		return nil
	})
	return ownerID, err
}

// GetRoomSummary recomputes the read-only view of a room in one
// transaction: membership, presence, nicknames and the auto-delete
// deadline. Returns nil when the room has no owner record.
func (r *RoomRegistry) GetRoomSummary(roomID string) (*domain.RoomSummary, error) {
	if roomID == "" {
		return nil, nil
	}
	var summary *domain.RoomSummary
	err := r.db.View(func(txn *badger.Txn) error {
		meta, err := r.readMeta(txn, roomID)
		if err != nil {
			return err
		}
		if meta == nil {
			return nil
		}
		members := suffixesWithPrefix(txn, roomMemberPrefix(roomID), 0)
		sort.Strings(members)
		online := make(map[string]struct{})
		for _, userID := range suffixesWithPrefix(txn, roomOnlinePrefix(roomID), 0) {
			online[userID] = struct{}{}
		}
		entries := make([]domain.RoomEntry, 0, len(members))
		for _, userID := range members {
			nickname, err := readValue(txn, roomNicknameKey(roomID, userID))
			if err != nil {
				return err
			}
			_, isOnline := online[userID]
			entries = append(entries, domain.RoomEntry{
				UserID:   userID,
				Nickname: string(nickname),
				Online:   isOnline,
			})
		}
		autoDeleteAt, err := r.readAutoDeleteAt(txn, roomID)
		if err != nil {
			return err
		}
		summary = &domain.RoomSummary{
			RoomID:       roomID,
			OwnerID:      meta.OwnerID,
			Entries:      entries,
			AutoDeleteAt: autoDeleteAt,
		}
		return nil
	})
	return summary, err
}

// SaveJoinApproveToken grants userID a TTL-bounded right to join roomID.
// Fails (false) when the room does not exist or the token TTL is disabled.
func (r *RoomRegistry) SaveJoinApproveToken(roomID, userID string) (bool, error) {
	if roomID == "" || userID == "" {
		return false, nil
	}
	if r.joinApproveTTL <= 0 {
		return false, nil
	}
	saved := false
	err := runUpdate(r.db, func(txn *badger.Txn) error {
		saved = false
		exists, err := keyExists(txn, roomMetaKey(roomID))
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}
		if err := r.writeJoinToken(txn, roomID, userID); err != nil {
			return err
		}
		saved = true
		return nil
	})
	return saved, err
}

func (r *RoomRegistry) HasJoinApproveToken(roomID, userID string) (bool, error) {
	if roomID == "" || userID == "" {
		return false, nil
	}
	has := false
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		has, err = keyExists(txn, joinApproveKey(roomID, userID))
		return err
	})
	return has, err
}

// RevokeJoinApproveToken deletes the token and the approved-set entry.
// Idempotent.
func (r *RoomRegistry) RevokeJoinApproveToken(roomID, userID string) error {
	if roomID == "" || userID == "" {
		return nil
	}
	return runUpdate(r.db, func(txn *badger.Txn) error {
		if err := txn.Delete(joinApproveKey(roomID, userID)); err != nil {
			return err
		}
		return txn.Delete(roomApprovedKey(roomID, userID))
	})
}

func (r *RoomRegistry) FindMemberNickname(roomID, userID string) (string, error) {
	if roomID == "" || userID == "" {
		return "", nil
	}
	var nickname string
	err := r.db.View(func(txn *badger.Txn) error {
		value, err := readValue(txn, roomNicknameKey(roomID, userID))
		if err != nil {
			return err
		}
		nickname = string(value)
		return nil
	})
	return nickname, err
}

// AddMemberWithNickname adds userID to the room's member set, records the
// room in the user's room set and stores the nickname — all three writes
// in one transaction. Fails (false) when the room does not exist.
func (r *RoomRegistry) AddMemberWithNickname(roomID, userID, nickname string) (bool, error) {
	if roomID == "" || userID == "" || nickname == "" {
		return false, nil
	}
	added := false
	err := runUpdate(r.db, func(txn *badger.Txn) error {
		added = false
		exists, err := keyExists(txn, roomMetaKey(roomID))
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}
		if err := txn.Set(roomMemberKey(roomID, userID), setMarker); err != nil {
			return err
		}
		if err := txn.Set(userRoomKey(userID, roomID), setMarker); err != nil {
			return err
		}
		if err := txn.Set(roomNicknameKey(roomID, userID), []byte(nickname)); err != nil {
			return err
		}
		added = true
		return nil
	})
	return added, err
}

// RemoveMember removes userID from the room in one transaction: both
// membership directions, the nickname, the presence and approved entries.
// When the last member leaves, the room and all its keys are deleted in
// the same transaction. When the departing user owned a surviving room,
// ownership passes to an arbitrary remaining member.
func (r *RoomRegistry) RemoveMember(roomID, userID string) (bool, error) {
	if roomID == "" || userID == "" {
		return false, nil
	}
	removed := false
	err := runUpdate(r.db, func(txn *badger.Txn) error {
		removed = false
		if !hasAnyWithPrefix(txn, roomMemberPrefix(roomID)) {
			return nil
		}
		meta, err := r.readMeta(txn, roomID)
		if err != nil {
			return err
		}
		for _, key := range [][]byte{
			roomMemberKey(roomID, userID),
			userRoomKey(userID, roomID),
			roomOnlineKey(roomID, userID),
			roomNicknameKey(roomID, userID),
			roomApprovedKey(roomID, userID),
			joinApproveKey(roomID, userID),
		} {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		if !hasAnyWithPrefix(txn, roomMemberPrefix(roomID)) {
			if err := r.deleteRoomKeys(txn, roomID); err != nil {
				return err
			}
			removed = true
			return nil
		}
		if meta != nil && meta.OwnerID == userID {
			remaining := suffixesWithPrefix(txn, roomMemberPrefix(roomID), 1)
			if len(remaining) > 0 {
				if err := r.writeOwner(txn, roomID, meta, remaining[0]); err != nil {
					return err
				}
			}
		}
		removed = true
		return nil
	})
	return removed, err
}

func (r *RoomRegistry) FindMembers(roomID string) ([]string, error) {
	return r.findSet(roomMemberPrefix(roomID), roomID != "")
}

func (r *RoomRegistry) FindOnlineMembers(roomID string) ([]string, error) {
	return r.findSet(roomOnlinePrefix(roomID), roomID != "")
}

func (r *RoomRegistry) FindRooms(userID string) ([]string, error) {
	return r.findSet(userRoomsPrefix(userID), userID != "")
}

func (r *RoomRegistry) FindAllRooms() ([]string, error) {
	return r.findSet(allRoomsPrefix(), true)
}

func (r *RoomRegistry) IsMember(roomID, userID string) (bool, error) {
	if roomID == "" || userID == "" {
		return false, nil
	}
	member := false
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		member, err = keyExists(txn, roomMemberKey(roomID, userID))
		return err
	})
	return member, err
}

// MarkOnline records presence and refreshes the room's activity
// timestamp. Membership is not validated here; that is the service
// layer's rule. Returns whether the presence set actually changed.
func (r *RoomRegistry) MarkOnline(roomID, userID string) (bool, error) {
	return r.markPresence(roomID, userID, true)
}

func (r *RoomRegistry) MarkOffline(roomID, userID string) (bool, error) {
	return r.markPresence(roomID, userID, false)
}

// DeleteRoom removes a room and every key referencing it: member
// back-references and nicknames, presence entries, approved-set entries
// with their join tokens, then the room's own keys and its global set
// entry. Set cleanup runs in bounded batches so an arbitrarily large
// membership never blocks the store.
func (r *RoomRegistry) DeleteRoom(roomID string) error {
	if roomID == "" {
		return nil
	}
	err := deletePrefixBatched(r.db, roomMemberPrefix(roomID), func(txn *badger.Txn, userID string) error {
		if err := txn.Delete(userRoomKey(userID, roomID)); err != nil {
			return err
		}
		return txn.Delete(roomNicknameKey(roomID, userID))
	})
	if err != nil {
		return err
	}
	err = deletePrefixBatched(r.db, roomApprovedPrefix(roomID), func(txn *badger.Txn, userID string) error {
		return txn.Delete(joinApproveKey(roomID, userID))
	})
	if err != nil {
		return err
	}
	if err := deletePrefixBatched(r.db, roomOnlinePrefix(roomID), nil); err != nil {
		return err
	}
	if err := deletePrefixBatched(r.db, joinApprovePrefix(roomID), nil); err != nil {
		return err
	}
	return runUpdate(r.db, func(txn *badger.Txn) error {
		if err := txn.Delete(roomMetaKey(roomID)); err != nil {
			return err
		}
		if err := txn.Delete(roomLastTouchKey(roomID)); err != nil {
			return err
		}
		return txn.Delete(allRoomsKey(roomID))
	})
}

// FindAutoDeleteAt is the room's deletion deadline: last activity plus
// the auto-delete TTL. Nil when the room has no recorded activity or the
// TTL is disabled.
func (r *RoomRegistry) FindAutoDeleteAt(roomID string) (*time.Time, error) {
	if roomID == "" {
		return nil, nil
	}
	var at *time.Time
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		at, err = r.readAutoDeleteAt(txn, roomID)
		return err
	})
	return at, err
}

func (r *RoomRegistry) IsAutoDeleteDue(roomID string, now time.Time) (bool, error) {
	at, err := r.FindAutoDeleteAt(roomID)
	if err != nil {
		return false, err
	}
	return at != nil && !at.After(now), nil
}

func (r *RoomRegistry) findSet(prefix []byte, validArgs bool) ([]string, error) {
	if !validArgs {
		return []string{}, nil
	}
	ids := []string{}
	err := r.db.View(func(txn *badger.Txn) error {
		ids = append(ids, suffixesWithPrefix(txn, prefix, 0)...)
		return nil
	})
	return ids, err
}

func (r *RoomRegistry) markPresence(roomID, userID string, online bool) (bool, error) {
	if roomID == "" || userID == "" {
		return false, nil
	}
	changed := false
	err := runUpdate(r.db, func(txn *badger.Txn) error {
		changed = false
		exists, err := keyExists(txn, roomOnlineKey(roomID, userID))
		if err != nil {
			return err
		}
		if online && !exists {
			if err := txn.Set(roomOnlineKey(roomID, userID), setMarker); err != nil {
				return err
			}
			changed = true
		}
		if !online && exists {
			if err := txn.Delete(roomOnlineKey(roomID, userID)); err != nil {
				return err
			}
			changed = true
		}
		return touchRoom(txn, roomID, time.Now())
	})
	return changed, err
}

func (r *RoomRegistry) readMeta(txn *badger.Txn, roomID string) (*roomMeta, error) {
	value, err := readValue(txn, roomMetaKey(roomID))
	if err != nil || value == nil {
		return nil, err
	}
	var meta roomMeta
	if err := json.Unmarshal(value, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (r *RoomRegistry) writeOwner(txn *badger.Txn, roomID string, meta *roomMeta, ownerID string) error {
	updated := roomMeta{OwnerID: ownerID, CreatedAt: meta.CreatedAt}
	value, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return txn.Set(roomMetaKey(roomID), value)
}

func (r *RoomRegistry) writeJoinToken(txn *badger.Txn, roomID, userID string) error {
	entry := badger.NewEntry(joinApproveKey(roomID, userID), setMarker).WithTTL(r.joinApproveTTL)
	if err := txn.SetEntry(entry); err != nil {
		return err
	}
	return txn.Set(roomApprovedKey(roomID, userID), setMarker)
}

func (r *RoomRegistry) deleteRoomKeys(txn *badger.Txn, roomID string) error {
	for _, prefix := range [][]byte{
		roomApprovedPrefix(roomID),
		roomOnlinePrefix(roomID),
		roomNicknamePrefix(roomID),
		joinApprovePrefix(roomID),
	} {
		for _, id := range suffixesWithPrefix(txn, prefix, 0) {
			if err := txn.Delete(append(prefix[:len(prefix):len(prefix)], id...)); err != nil {
				return err
			}
		}
	}
	if err := txn.Delete(roomMetaKey(roomID)); err != nil {
		return err
	}
	if err := txn.Delete(roomLastTouchKey(roomID)); err != nil {
		return err
	}
	return txn.Delete(allRoomsKey(roomID))
}

func (r *RoomRegistry) readAutoDeleteAt(txn *badger.Txn, roomID string) (*time.Time, error) {
	if r.autoDeleteTTL <= 0 {
		return nil, nil
	}
	value, err := readValue(txn, roomLastTouchKey(roomID))
	if err != nil || value == nil {
		return nil, err
	}
	millis, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return nil, nil
	}
	at := time.UnixMilli(millis).UTC().Add(r.autoDeleteTTL)
	return &at, nil
}

func touchRoom(txn *badger.Txn, roomID string, at time.Time) error {
	return txn.Set(roomLastTouchKey(roomID), []byte(strconv.FormatInt(at.UnixMilli(), 10)))
}
