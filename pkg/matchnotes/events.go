package matchnotes

import "github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"

// Event is re-exported from the event package for caller convenience.
type Event = event.Event

// Action is re-exported from the event package for caller convenience.
type Action = event.Action

// ClipWindow is re-exported from the event package for caller convenience.
type ClipWindow = event.ClipWindow

// Action categories, re-exported.
const (
	ActionGoal         = event.ActionGoal
	ActionAssist       = event.ActionAssist
	ActionSave         = event.ActionSave
	ActionCard         = event.ActionCard
	ActionSubstitution = event.ActionSubstitution
	ActionFoul         = event.ActionFoul
	ActionCorner       = event.ActionCorner
	ActionOffside      = event.ActionOffside
	ActionChance       = event.ActionChance
	ActionTackle       = event.ActionTackle
	ActionOther        = event.ActionOther
	ActionKickoff      = event.ActionKickoff
	ActionHalfTime     = event.ActionHalfTime
	ActionFullTime     = event.ActionFullTime
)

// Player name sentinels, re-exported.
const (
	PlayerUnknown = event.PlayerUnknown
	PlayerSystem  = event.PlayerSystem
)
