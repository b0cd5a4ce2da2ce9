//go:generate go run go.uber.org/mock/mockgen -source=room_service.go -destination=../mocks/mock_room_service.go -package=mocks
package services

import (
	"log/slog"
	"sort"
	"time"

	"chat-session-core/domain"
	"chat-session-core/errors"
	"chat-session-core/registry"
)

// JoinResult carries the fresh room view plus the payload broadcast to
// every current member.
type JoinResult struct {
	Summary       domain.RoomSummary
	NotifyPayload map[string]any
}

// JoinRequestResult is either an immediate approval aimed back at the
// requester (DirectApprove) or a pending request aimed at the owner.
type JoinRequestResult struct {
	DirectApprove bool
	TargetUserID  string
	Payload       map[string]any
}

type LeaveResult struct {
	RoomID                 string
	NotifyPayload          map[string]any
	RemainingOnlineMembers []string
}

// LeaveAllResult reports both the attempted room set and the per-room
// results that actually succeeded, so partial failure is observable.
type LeaveAllResult struct {
	Rooms   []string
	Results []LeaveResult
}

type PresenceResult struct {
	RoomID        string
	NotifyPayload map[string]any
	OnlineMembers []string
}

type PresenceAllResult struct {
	Rooms   []string
	Results []PresenceResult
}

// IRoomRegistryService translates gateway intents into registry calls and
// builds the notification payloads handlers fan out. Business rules the
// registry does not know (permissions, membership requirements) live here.
type IRoomRegistryService interface {
	CreateRoom(ownerID string) (domain.Room, error)
	GetRoomSummary(roomID string) (domain.RoomSummary, error)
	PrepareClientMessage(roomID, userID, message string) (map[string]any, []string, error)
	JoinRoom(roomID, userID, nickname string) (JoinResult, error)
	PrepareJoinRequest(roomID, requestedUserID, nickname string) (JoinRequestResult, error)
	ApproveJoin(roomID, ownerID, requestedUserID string, approved bool) (map[string]any, error)
	LeaveRoom(roomID, userID string) (LeaveResult, error)
	LeaveRoomIfMember(roomID, userID string) (*LeaveResult, error)
	LeaveAllRooms(userID string) (LeaveAllResult, error)
	LeaveRoomForDisconnect(roomID, userID string) (*LeaveResult, error)
	LeaveAllRoomsForDisconnect(userID string) (LeaveAllResult, error)
	MarkOnline(roomID, userID string) (PresenceResult, error)
	MarkOffline(roomID, userID string) (PresenceResult, error)
	MarkOfflineIfMember(roomID, userID string) (*PresenceResult, error)
	MarkAllRoomsOffline(userID string) (PresenceAllResult, error)
	ListRoomSummaries(userID string) ([]domain.RoomSummary, error)
	DeleteExpiredRooms(now time.Time) (int, error)
}

type RoomRegistryService struct {
	rooms registry.IRoomRegistry
	log   *slog.Logger
}

func NewRoomRegistryService(rooms registry.IRoomRegistry, log *slog.Logger) *RoomRegistryService {
	return &RoomRegistryService{rooms: rooms, log: log}
}

// CreateRoom opens a new room owned by ownerID. The owner receives an
// implicit join token as part of the same registry transaction.
func (s *RoomRegistryService) CreateRoom(ownerID string) (domain.Room, error) {
	if ownerID == "" {
		return domain.Room{}, errors.New(errors.RoomCreateFailed)
	}
	room, err := s.rooms.CreateRoom(ownerID)
	if err != nil {
		return domain.Room{}, errors.Wrap(errors.RoomCreateFailed, err)
	}
	return room, nil
}

// GetRoomSummary is the service-level read of a room view; absence is a
// recognized failure rather than a nil.
func (s *RoomRegistryService) GetRoomSummary(roomID string) (domain.RoomSummary, error) {
	summary, err := s.rooms.GetRoomSummary(roomID)
	if err != nil {
		return domain.RoomSummary{}, err
	}
	if summary == nil {
		return domain.RoomSummary{}, errors.New(errors.RoomSummaryFailed)
	}
	return *summary, nil
}

// PrepareClientMessage resolves the sender's nickname and builds the
// relay payload plus the online members it should reach.
func (s *RoomRegistryService) PrepareClientMessage(roomID, userID, message string) (map[string]any, []string, error) {
	nickname, err := s.rooms.FindMemberNickname(roomID, userID)
	if err != nil {
		return nil, nil, err
	}
	if nickname == "" {
		return nil, nil, errors.New(errors.NicknameNotFound)
	}
	online, err := s.rooms.FindOnlineMembers(roomID)
	if err != nil {
		return nil, nil, err
	}
	payload := map[string]any{
		"roomId":   roomID,
		"userId":   userID,
		"message":  message,
		"nickname": nickname,
	}
	return payload, online, nil
}

// JoinRoom admits a user holding a live join token. A summary failure
// right after a successful add means the registry is inconsistent; it is
// surfaced as an internal failure, not retried.
func (s *RoomRegistryService) JoinRoom(roomID, userID, nickname string) (JoinResult, error) {
	hasToken, err := s.rooms.HasJoinApproveToken(roomID, userID)
	if err != nil {
		return JoinResult{}, err
	}
	if !hasToken {
		return JoinResult{}, errors.New(errors.JoinPermissionRequired)
	}
	member, err := s.rooms.IsMember(roomID, userID)
	if err != nil {
		return JoinResult{}, err
	}
	if member {
		return JoinResult{}, errors.New(errors.AlreadyJoined)
	}
	joined, err := s.rooms.AddMemberWithNickname(roomID, userID, nickname)
	if err != nil {
		return JoinResult{}, err
	}
	if !joined {
		return JoinResult{}, errors.New(errors.JoinFailed)
	}
	summary, err := s.rooms.GetRoomSummary(roomID)
	if err != nil {
		return JoinResult{}, err
	}
	if summary == nil {
		return JoinResult{}, errors.Newf(errors.RoomSummaryFailed, "room %s vanished after join", roomID)
	}
	return JoinResult{
		Summary: *summary,
		NotifyPayload: map[string]any{
			"userId":   userID,
			"nickname": nickname,
		},
	}, nil
}

// PrepareJoinRequest decides whether a join request needs the owner's
// round-trip. Holding a token, or owning the room, short-circuits to a
// direct approval targeted back at the requester.
func (s *RoomRegistryService) PrepareJoinRequest(roomID, requestedUserID, nickname string) (JoinRequestResult, error) {
	hasToken, err := s.rooms.HasJoinApproveToken(roomID, requestedUserID)
	if err != nil {
		return JoinRequestResult{}, err
	}
	if hasToken {
		return directApproval(roomID, requestedUserID), nil
	}
	ownerID, err := s.rooms.FindOwnerID(roomID)
	if err != nil {
		return JoinRequestResult{}, err
	}
	if ownerID == "" {
		return JoinRequestResult{}, errors.New(errors.RoomNotFound)
	}
	if ownerID == requestedUserID {
		return directApproval(roomID, requestedUserID), nil
	}
	return JoinRequestResult{
		DirectApprove: false,
		TargetUserID:  ownerID,
		Payload: map[string]any{
			"requestedUserId": requestedUserID,
			"nickname":        nickname,
			"roomId":          roomID,
		},
	}, nil
}

// ApproveJoin lets the owner grant or revoke a join token. The returned
// payload notifies the requester of the decision.
func (s *RoomRegistryService) ApproveJoin(roomID, ownerID, requestedUserID string, approved bool) (map[string]any, error) {
	actualOwnerID, err := s.rooms.FindOwnerID(roomID)
	if err != nil {
		return nil, err
	}
	if actualOwnerID == "" {
		return nil, errors.New(errors.RoomNotFound)
	}
	if actualOwnerID != ownerID {
		return nil, errors.New(errors.NotRoomOwner)
	}
	if approved {
		if _, err := s.rooms.SaveJoinApproveToken(roomID, requestedUserID); err != nil {
			return nil, err
		}
	} else {
		if err := s.rooms.RevokeJoinApproveToken(roomID, requestedUserID); err != nil {
			return nil, err
		}
	}
	return map[string]any{
		"requestedUserId": requestedUserID,
		"roomId":          roomID,
		"approved":        approved,
	}, nil
}

// LeaveRoom removes a member, reporting the departure payload and the
// remaining online members for fan-out. When the departing user owned the
// room and it survives, the payload carries the successor.
func (s *RoomRegistryService) LeaveRoom(roomID, userID string) (LeaveResult, error) {
	previousOwnerID, err := s.rooms.FindOwnerID(roomID)
	if err != nil {
		return LeaveResult{}, err
	}
	if previousOwnerID == "" {
		return LeaveResult{}, errors.New(errors.RoomNotFound)
	}
	member, err := s.rooms.IsMember(roomID, userID)
	if err != nil {
		return LeaveResult{}, err
	}
	if !member {
		return LeaveResult{}, errors.New(errors.NotRoomMember)
	}
	nickname, err := s.rooms.FindMemberNickname(roomID, userID)
	if err != nil {
		return LeaveResult{}, err
	}
	if nickname == "" {
		return LeaveResult{}, errors.New(errors.NicknameNotFound)
	}
	removed, err := s.rooms.RemoveMember(roomID, userID)
	if err != nil {
		return LeaveResult{}, err
	}
	if !removed {
		return LeaveResult{}, errors.New(errors.LeaveFailed)
	}
	return s.buildLeaveResult(roomID, userID, nickname, previousOwnerID)
}

// LeaveRoomIfMember is the best-effort variant for bulk sweeps: nil when
// the user is not a member, and per-room failures are logged, not raised.
func (s *RoomRegistryService) LeaveRoomIfMember(roomID, userID string) (*LeaveResult, error) {
	if roomID == "" {
		return nil, nil
	}
	member, err := s.rooms.IsMember(roomID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, nil
	}
	result, err := s.LeaveRoom(roomID, userID)
	if err != nil {
		s.log.Warn("room service: leave failed", "userId", userID, "roomId", roomID, "error", err)
		return nil, nil
	}
	return &result, nil
}

func (s *RoomRegistryService) LeaveAllRooms(userID string) (LeaveAllResult, error) {
	rooms, err := s.rooms.FindRooms(userID)
	if err != nil {
		return LeaveAllResult{}, err
	}
	results := make([]LeaveResult, 0, len(rooms))
	for _, roomID := range rooms {
		result, err := s.LeaveRoomIfMember(roomID, userID)
		if err != nil {
			return LeaveAllResult{}, err
		}
		if result != nil {
			results = append(results, *result)
		}
	}
	return LeaveAllResult{Rooms: rooms, Results: results}, nil
}

// LeaveRoomForDisconnect tolerates missing nickname or owner data: the
// notify payload simply omits what it cannot resolve, so one broken room
// never blocks the disconnect sweep.
func (s *RoomRegistryService) LeaveRoomForDisconnect(roomID, userID string) (*LeaveResult, error) {
	if roomID == "" {
		return nil, nil
	}
	member, err := s.rooms.IsMember(roomID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, nil
	}
	previousOwnerID, err := s.rooms.FindOwnerID(roomID)
	if err != nil {
		return nil, err
	}
	nickname, err := s.rooms.FindMemberNickname(roomID, userID)
	if err != nil {
		return nil, err
	}
	removed, err := s.rooms.RemoveMember(roomID, userID)
	if err != nil {
		return nil, err
	}
	if !removed {
		s.log.Warn("room service: disconnect leave failed", "userId", userID, "roomId", roomID)
		return nil, nil
	}
	notifyPayload := map[string]any{"userId": userID}
	if nickname != "" {
		notifyPayload["nickname"] = nickname
	}
	if previousOwnerID == userID {
		newOwnerID, err := s.rooms.FindOwnerID(roomID)
		if err != nil {
			return nil, err
		}
		if newOwnerID != "" {
			notifyPayload["newOwnerId"] = newOwnerID
		}
	}
	online, err := s.rooms.FindOnlineMembers(roomID)
	if err != nil {
		return nil, err
	}
	return &LeaveResult{RoomID: roomID, NotifyPayload: notifyPayload, RemainingOnlineMembers: online}, nil
}

func (s *RoomRegistryService) LeaveAllRoomsForDisconnect(userID string) (LeaveAllResult, error) {
	rooms, err := s.rooms.FindRooms(userID)
	if err != nil {
		return LeaveAllResult{}, err
	}
	results := make([]LeaveResult, 0, len(rooms))
	for _, roomID := range rooms {
		result, err := s.LeaveRoomForDisconnect(roomID, userID)
		if err != nil {
			s.log.Warn("room service: disconnect sweep skipped room", "userId", userID, "roomId", roomID, "error", err)
			continue
		}
		if result != nil {
			results = append(results, *result)
		}
	}
	return LeaveAllResult{Rooms: rooms, Results: results}, nil
}

// MarkOnline requires current membership; the registry primitive does
// not check it. The caller excludes the actor from the fan-out.
func (s *RoomRegistryService) MarkOnline(roomID, userID string) (PresenceResult, error) {
	return s.markPresence(roomID, userID, true)
}

func (s *RoomRegistryService) MarkOffline(roomID, userID string) (PresenceResult, error) {
	return s.markPresence(roomID, userID, false)
}

func (s *RoomRegistryService) MarkOfflineIfMember(roomID, userID string) (*PresenceResult, error) {
	if roomID == "" {
		return nil, nil
	}
	member, err := s.rooms.IsMember(roomID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, nil
	}
	changed, err := s.rooms.MarkOffline(roomID, userID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, nil
	}
	result, err := s.buildPresenceResult(roomID, userID)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *RoomRegistryService) MarkAllRoomsOffline(userID string) (PresenceAllResult, error) {
	rooms, err := s.rooms.FindRooms(userID)
	if err != nil {
		return PresenceAllResult{}, err
	}
	results := make([]PresenceResult, 0, len(rooms))
	for _, roomID := range rooms {
		result, err := s.MarkOfflineIfMember(roomID, userID)
		if err != nil {
			s.log.Warn("room service: offline sweep skipped room", "userId", userID, "roomId", roomID, "error", err)
			continue
		}
		if result != nil {
			results = append(results, *result)
		}
	}
	return PresenceAllResult{Rooms: rooms, Results: results}, nil
}

// ListRoomSummaries returns every room the user belongs to, sorted by
// room id for a stable result.
func (s *RoomRegistryService) ListRoomSummaries(userID string) ([]domain.RoomSummary, error) {
	rooms, err := s.rooms.FindRooms(userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.RoomSummary, 0, len(rooms))
	for _, roomID := range rooms {
		summary, err := s.rooms.GetRoomSummary(roomID)
		if err != nil {
			return nil, err
		}
		if summary != nil {
			summaries = append(summaries, *summary)
		}
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].RoomID < summaries[j].RoomID
	})
	return summaries, nil
}

// DeleteExpiredRooms sweeps the global room set and deletes every room
// whose auto-delete deadline has passed. Safe to run concurrently with
// normal traffic; all safety comes from per-room registry atomicity.
func (s *RoomRegistryService) DeleteExpiredRooms(now time.Time) (int, error) {
	rooms, err := s.rooms.FindAllRooms()
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, roomID := range rooms {
		due, err := s.rooms.IsAutoDeleteDue(roomID, now)
		if err != nil {
			s.log.Warn("room service: expiry check failed", "roomId", roomID, "error", err)
			continue
		}
		if !due {
			continue
		}
		if err := s.rooms.DeleteRoom(roomID); err != nil {
			s.log.Warn("room service: expired room delete failed", "roomId", roomID, "error", err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

func (s *RoomRegistryService) markPresence(roomID, userID string, online bool) (PresenceResult, error) {
	if roomID == "" {
		return PresenceResult{}, errors.New(errors.RoomIDRequired)
	}
	member, err := s.rooms.IsMember(roomID, userID)
	if err != nil {
		return PresenceResult{}, err
	}
	if !member {
		return PresenceResult{}, errors.New(errors.NotRoomMember)
	}
	if online {
		_, err = s.rooms.MarkOnline(roomID, userID)
	} else {
		_, err = s.rooms.MarkOffline(roomID, userID)
	}
	if err != nil {
		return PresenceResult{}, err
	}
	return s.buildPresenceResult(roomID, userID)
}

func (s *RoomRegistryService) buildPresenceResult(roomID, userID string) (PresenceResult, error) {
	nickname, err := s.rooms.FindMemberNickname(roomID, userID)
	if err != nil {
		return PresenceResult{}, err
	}
	notifyPayload := map[string]any{"userId": userID}
	if nickname != "" {
		notifyPayload["nickname"] = nickname
	}
	online, err := s.rooms.FindOnlineMembers(roomID)
	if err != nil {
		return PresenceResult{}, err
	}
	return PresenceResult{RoomID: roomID, NotifyPayload: notifyPayload, OnlineMembers: online}, nil
}

func (s *RoomRegistryService) buildLeaveResult(roomID, userID, nickname, previousOwnerID string) (LeaveResult, error) {
	notifyPayload := map[string]any{
		"userId":   userID,
		"nickname": nickname,
	}
	if previousOwnerID == userID {
		newOwnerID, err := s.rooms.FindOwnerID(roomID)
		if err != nil {
			return LeaveResult{}, err
		}
		if newOwnerID != "" {
			notifyPayload["newOwnerId"] = newOwnerID
		}
	}
	online, err := s.rooms.FindOnlineMembers(roomID)
	if err != nil {
		return LeaveResult{}, err
	}
	return LeaveResult{RoomID: roomID, NotifyPayload: notifyPayload, RemainingOnlineMembers: online}, nil
}

func directApproval(roomID, requestedUserID string) JoinRequestResult {
	return JoinRequestResult{
		DirectApprove: true,
		TargetUserID:  requestedUserID,
		Payload: map[string]any{
			"requestedUserId": requestedUserID,
			"roomId":          roomID,
			"approved":        true,
		},
	}
}
