package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump     // Held: long jump
	ActionFastFall // Held: fast fall
	ActionDash
	ActionRoll
	ActionAttack
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionJump:      "jump",
	ActionFastFall:  "down",
	ActionDash:      "dash",
	ActionRoll:      "roll",
	ActionAttack:    "attack",
	ActionPause:     "pause",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction maps a script/action name back to its ActionID.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return id, true
		}
	}
	return ActionNone, false
}
