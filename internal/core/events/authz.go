package events

// CanMutate reports whether the caller may mutate the event's own fields
// (update, delete). True for the event's author and for admins.
// Pure predicate; callers must check it before attempting any write.
func CanMutate(event *Event, caller Caller) bool {
	if event == nil {
		return false
	}
	return caller.ID == event.AuthorID || caller.Role == RoleAdmin
}
