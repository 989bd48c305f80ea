package event

import "strings"

// Definition describes one action category: the keywords that select it,
// its priority rank, and the clip window a downstream video cutter should
// retain around events of this category.
//
// The table is purely data. Adding or re-tuning a category never requires
// touching the matching algorithm.
type Definition struct {
	Action   Action
	Keywords []string
	Priority int
	Clip     ClipWindow
}

// Definitions is the static category table, in declaration order.
// Order matters: keywords are tested top to bottom, so earlier categories
// win ties (goal keywords are checked ahead of chance keywords, so
// "almost scored" classifies as goal).
var Definitions = []Definition{
	{
		Action:   ActionGoal,
		Keywords: []string{"goal", "score", "nets it", "converts", "finishes"},
		Priority: 1,
		Clip:     ClipWindow{Before: 8, After: 12},
	},
	{
		Action:   ActionAssist,
		Keywords: []string{"assist", "sets up", "set up", "through ball", "lays it off"},
		Priority: 2,
		Clip:     ClipWindow{Before: 6, After: 8},
	},
	{
		Action:   ActionSave,
		Keywords: []string{"save", "block", "denies", "denied", "parries", "keeps it out"},
		Priority: 3,
		Clip:     ClipWindow{Before: 5, After: 8},
	},
	{
		Action:   ActionCard,
		Keywords: []string{"yellow", "red card", "booked", "booking", "sent off", "caution", "cautioned"},
		Priority: 4,
		Clip:     ClipWindow{Before: 5, After: 7},
	},
	{
		Action:   ActionSubstitution,
		Keywords: []string{"substitution", "substituted", "sub on", "subbed", "comes on", "comes off", "replaced by"},
		Priority: 5,
		Clip:     ClipWindow{Before: 3, After: 5},
	},
	{
		Action:   ActionFoul,
		Keywords: []string{"foul", "fouled", "handball", "trips", "tripped", "brings down", "free kick conceded"},
		Priority: 6,
		Clip:     ClipWindow{Before: 4, After: 6},
	},
	{
		Action:   ActionCorner,
		Keywords: []string{"corner"},
		Priority: 7,
		Clip:     ClipWindow{Before: 4, After: 6},
	},
	{
		Action:   ActionOffside,
		Keywords: []string{"offside"},
		Priority: 8,
		Clip:     ClipWindow{Before: 3, After: 5},
	},
	{
		Action:   ActionChance,
		Keywords: []string{"chance", "shot", "attempt", "effort", "almost", "nearly", "so close", "volley"},
		Priority: 9,
		Clip:     ClipWindow{Before: 5, After: 8},
	},
	{
		Action:   ActionTackle,
		Keywords: []string{"tackle", "challenge", "dispossess", "wins the ball"},
		Priority: 10,
		Clip:     ClipWindow{Before: 4, After: 6},
	},
}

// systemDefinitions covers the pseudo-categories recognized by dedicated
// markers rather than keywords. Anchor events carry no clip footage.
var systemDefinitions = []Definition{
	{Action: ActionKickoff, Priority: 0},
	{Action: ActionHalfTime, Priority: 0},
	{Action: ActionFullTime, Priority: 0},
}

// otherDefinition is returned for descriptions matching no category.
var otherDefinition = Definition{
	Action:   ActionOther,
	Priority: 99,
	Clip:     ClipWindow{Before: 3, After: 5},
}

// definitionByAction maps every category (keyword, system, and other)
// to its definition. Built once at package initialization.
var definitionByAction = func() map[Action]Definition {
	m := make(map[Action]Definition, len(Definitions)+len(systemDefinitions)+1)
	for _, d := range Definitions {
		m[d.Action] = d
	}
	for _, d := range systemDefinitions {
		m[d.Action] = d
	}
	m[ActionOther] = otherDefinition
	return m
}()

// DefinitionFor returns the definition for an action category.
// Unrecognized categories fall back to the "other" definition.
func DefinitionFor(a Action) Definition {
	if d, ok := definitionByAction[a]; ok {
		return d
	}
	return otherDefinition
}

// ClassifyKeywords runs the keyword table only, in declaration order.
// It reports false if no category keyword occurs in the description.
// This is the classification path the fuzzy fallback parser uses.
func ClassifyKeywords(description string) (Action, bool) {
	desc := strings.ToLower(description)
	for _, d := range Definitions {
		for _, kw := range d.Keywords {
			if strings.Contains(desc, kw) {
				return d.Action, true
			}
		}
	}
	return ActionOther, false
}

// Classify maps a free-text description to a category. It runs the
// keyword table first, then the contextual fallback rules:
// a net reference plus a directional word reads as a goal, a shot that
// went wide/over/off the post reads as a chance, and hand+ball reads as
// a foul. Descriptions matching nothing classify as ActionOther.
func Classify(description string) Action {
	if a, ok := ClassifyKeywords(description); ok {
		return a
	}

	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "net") && (strings.Contains(desc, "back") || strings.Contains(desc, "into")):
		return ActionGoal
	case strings.Contains(desc, "wide") || strings.Contains(desc, "over") || strings.Contains(desc, "post"):
		return ActionChance
	case strings.Contains(desc, "hand") && strings.Contains(desc, "ball"):
		return ActionFoul
	}
	return ActionOther
}
