package service

// Action is the closed set of moderation actions. Request payloads arrive as
// strings; ParseAction maps anything outside the set to ActionUnknown, which
// the dispatcher treats as a logged no-op.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionDelete  Action = "delete"
	ActionUnknown Action = ""
)

// ParseAction maps a request string onto the action set.
func ParseAction(s string) Action {
	switch s {
	case "approve":
		return ActionApprove
	case "reject":
		return ActionReject
	case "delete":
		return ActionDelete
	default:
		return ActionUnknown
	}
}

// Entity distinguishes the two moderated collection types.
type Entity string

const (
	EntityPost Entity = "post"
	EntityReel Entity = "reel"
)

// Target identifies the entity a moderation action applies to.
type Target struct {
	Entity Entity
	ID     string
}

func (t Target) key() string {
	return string(t.Entity) + ":" + t.ID
}
