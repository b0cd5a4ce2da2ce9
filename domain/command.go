package domain

import (
	"time"
)

// Action is the closed set of operations a gateway may request.
// Unrecognized wire strings map to ActionUnknown so the dispatcher can
// answer with a structured error instead of dropping the command.
type Action string

const (
	ActionRoomCreate    Action = "ROOM_CREATE"
	ActionRoomList      Action = "ROOM_LIST"
	ActionJoinRequest   Action = "JOIN_REQUEST"
	ActionJoinApprove   Action = "JOIN_APPROVE"
	ActionJoin          Action = "JOIN"
	ActionLeave         Action = "LEAVE"
	ActionOnline        Action = "ONLINE"
	ActionOffline       Action = "OFFLINE"
	ActionClientMessage Action = "CLIENT_MESSAGE"
	ActionConnClosed    Action = "CONN_CLOSED"
	ActionUnknown       Action = "UNKNOWN"
)

var knownActions = map[Action]struct{}{
	ActionRoomCreate:    {},
	ActionRoomList:      {},
	ActionJoinRequest:   {},
	ActionJoinApprove:   {},
	ActionJoin:          {},
	ActionLeave:         {},
	ActionOnline:        {},
	ActionOffline:       {},
	ActionClientMessage: {},
	ActionConnClosed:    {},
	ActionUnknown:       {},
}

func ActionFrom(value string) Action {
	action := Action(value)
	if _, ok := knownActions[action]; ok {
		return action
	}
	return ActionUnknown
}

// Command is one inbound request attributed to one user. Immutable once
// decoded by the transport; consumed by exactly one handler.
type Command struct {
	CommandID string
	RequestID string
	UserID    string
	Action    Action
	Payload   string
	SentAt    time.Time
}
