// Package errors defines the recognized failure kinds of the session core.
// Each kind carries a stable code delivered to gateways and a default
// human-readable reason. Store-level failures stay unrecognized and are
// surfaced to the acting user as internal errors.
package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind struct {
	Code   string
	Reason string
}

var (
	UnsupportedAction      = Kind{"CSM-CMD-001", "unsupported action"}
	NicknameRequired       = Kind{"CSM-REQ-001", "nickname is required"}
	JoinPermissionRequired = Kind{"CSM-REQ-002", "join permission required"}
	AlreadyJoined          = Kind{"CSM-REQ-003", "already joined"}
	JoinFailed             = Kind{"CSM-REQ-004", "join failed"}
	RoomNotFound           = Kind{"CSM-REQ-005", "room not found"}
	NotRoomOwner           = Kind{"CSM-REQ-006", "not the room owner"}
	NotRoomMember          = Kind{"CSM-REQ-007", "not a room member"}
	NicknameNotFound       = Kind{"CSM-REQ-008", "nickname not found"}
	LeaveFailed            = Kind{"CSM-REQ-009", "leave failed"}
	RoomIDRequired         = Kind{"CSM-REQ-010", "roomId is required"}
	RoomCreateFailed       = Kind{"CSM-SRV-001", "room creation failed"}
	RoomSummaryFailed      = Kind{"CSM-SRV-002", "room summary unavailable"}
	Internal               = Kind{"CSM-SRV-500", "internal server error"}
)

// ErrWorkerPanic marks a supervised worker that crashed and was restarted.
var ErrWorkerPanic = stderrors.New("worker panic")

// Error attaches a recognized kind to a failure. Reason overrides the
// kind's default message when set.
type Error struct {
	Kind   Kind
	Reason string
	cause  error
}

func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

func (e *Error) Error() string {
	reason := e.Message()
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", reason, e.cause)
	}
	return reason
}

// Message is the user-facing reason: the explicit one when present,
// otherwise the kind's default.
func (e *Error) Message() string {
	if e.Reason != "" {
		return e.Reason
	}
	return e.Kind.Reason
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches two recognized errors by kind code, so callers can compare
// against bare sentinels like errors.New(errors.RoomNotFound).
func (e *Error) Is(target error) bool {
	var other *Error
	if !stderrors.As(target, &other) {
		return false
	}
	return e.Kind.Code == other.Kind.Code
}

// KindOf extracts the recognized kind from an error chain. The second
// return is false for unrecognized (internal) failures.
func KindOf(err error) (Kind, bool) {
	var recognized *Error
	if stderrors.As(err, &recognized) {
		return recognized.Kind, true
	}
	return Kind{}, false
}
