package domain

// Action is the configured punitive response to a failed verification.
type Action string

const (
	// ActionKick bans and immediately unbans, so the user may rejoin and retry.
	ActionKick Action = "kick"
	// ActionMute revokes send permission but keeps the user in the chat.
	ActionMute Action = "mute"
	// ActionBan is permanent.
	ActionBan Action = "ban"
)

// ParseAction maps a persisted string back into the closed enumeration,
// falling back to ActionKick on unrecognized values.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionKick, ActionMute, ActionBan:
		return Action(s), true
	}
	return ActionKick, false
}
