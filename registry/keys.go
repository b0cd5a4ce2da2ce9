package registry

// Key layout of the shared store. Sets are modeled as key prefixes and
// enumerated by prefix iteration, so batch cleanup stays bounded.
//
//	room:{id}:meta                     room metadata (JSON)
//	room:{id}:member:{userId}          membership set entry
//	room:{id}:online:{userId}          presence set entry
//	room:{id}:approved:{userId}        users holding (or having held) a token
//	room:{id}:nick:{userId}            nickname value
//	room:{id}:lastTouch                last activity, epoch millis
//	join:approve:{roomId}:{userId}     join token, store TTL
//	user:{userId}:room:{roomId}        membership back-reference
//	rooms:all:{roomId}                 global room set entry
//	presence:session:{userId}          routing key of the user's gateway
//	evt:payload:{eventId}              ledger payload (JSON), store TTL
//	evt:retry:{eventId}                attempt counter
//	evt:sched:{eventId}                current pending-index slot
//	evt:pending:{millis}:{eventId}     time-ordered pending index
func roomMetaKey(roomID string) []byte {
	return []byte("room:" + roomID + ":meta")
}

func roomLastTouchKey(roomID string) []byte {
	return []byte("room:" + roomID + ":lastTouch")
}

func roomMemberPrefix(roomID string) []byte {
	return []byte("room:" + roomID + ":member:")
}

func roomMemberKey(roomID, userID string) []byte {
	return append(roomMemberPrefix(roomID), userID...)
}

func roomOnlinePrefix(roomID string) []byte {
	return []byte("room:" + roomID + ":online:")
}

func roomOnlineKey(roomID, userID string) []byte {
	return append(roomOnlinePrefix(roomID), userID...)
}

func roomApprovedPrefix(roomID string) []byte {
	return []byte("room:" + roomID + ":approved:")
}

func roomApprovedKey(roomID, userID string) []byte {
	return append(roomApprovedPrefix(roomID), userID...)
}

func roomNicknamePrefix(roomID string) []byte {
	return []byte("room:" + roomID + ":nick:")
}

func roomNicknameKey(roomID, userID string) []byte {
	return append(roomNicknamePrefix(roomID), userID...)
}

func joinApprovePrefix(roomID string) []byte {
	return []byte("join:approve:" + roomID + ":")
}

func joinApproveKey(roomID, userID string) []byte {
	return append(joinApprovePrefix(roomID), userID...)
}

func userRoomsPrefix(userID string) []byte {
	return []byte("user:" + userID + ":room:")
}

func userRoomKey(userID, roomID string) []byte {
	return append(userRoomsPrefix(userID), roomID...)
}

func allRoomsPrefix() []byte {
	return []byte("rooms:all:")
}

func allRoomsKey(roomID string) []byte {
	return append(allRoomsPrefix(), roomID...)
}

func presenceKey(userID string) []byte {
	return []byte("presence:session:" + userID)
}
