package event

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Action
	}{
		{name: "goal keyword", input: "goal from penalty", want: ActionGoal},
		{name: "scores", input: "Martinez scores the winner", want: ActionGoal},
		{name: "case insensitive", input: "GOAL!!!", want: ActionGoal},
		{name: "assist", input: "lovely assist from the wing", want: ActionAssist},
		{name: "save", input: "fingertip save", want: ActionSave},
		{name: "block counts as save", input: "great block at the near post", want: ActionSave},
		{name: "card", input: "yellow for dissent", want: ActionCard},
		{name: "substitution", input: "comes on for the last ten", want: ActionSubstitution},
		{name: "foul", input: "clumsy foul in midfield", want: ActionFoul},
		{name: "corner", input: "corner swung in", want: ActionCorner},
		{name: "offside", input: "flag up, offside", want: ActionOffside},
		{name: "chance", input: "good chance wasted", want: ActionChance},
		{name: "tackle", input: "crunching tackle", want: ActionTackle},

		// Declaration order is the tie-break: goal keywords are checked
		// ahead of chance keywords, so "almost scored" reads as a goal.
		// This pins the known precision/recall tradeoff.
		{name: "goal beats chance on order", input: "almost scored there", want: ActionGoal},
		{name: "goal beats corner on order", input: "goal from the corner", want: ActionGoal},

		// Contextual fallback rules.
		{name: "net plus directional is a goal", input: "it rattles into the net", want: ActionGoal},
		{name: "back of the net is a goal", input: "back of the net", want: ActionGoal},
		{name: "wide is a chance", input: "drags it wide", want: ActionChance},
		{name: "post is a chance", input: "rattles the post", want: ActionChance},
		{name: "hand plus ball is a foul", input: "hand to the ball in the area", want: ActionFoul},

		{name: "nothing matches", input: "jogging around midfield", want: ActionOther},
		{name: "empty", input: "", want: ActionOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyKeywordsSkipsContextRules(t *testing.T) {
	// The fuzzy path uses the keyword table only.
	if a, ok := ClassifyKeywords("drags it wide"); ok {
		t.Errorf("ClassifyKeywords matched %q, want no match", a)
	}
	if a, ok := ClassifyKeywords("back of the net"); ok {
		t.Errorf("ClassifyKeywords matched %q, want no match", a)
	}
}

func TestDefinitionFor(t *testing.T) {
	goal := DefinitionFor(ActionGoal)
	if goal.Clip != (ClipWindow{Before: 8, After: 12}) {
		t.Errorf("goal clip = %+v", goal.Clip)
	}
	save := DefinitionFor(ActionSave)
	if save.Clip != (ClipWindow{Before: 5, After: 8}) {
		t.Errorf("save clip = %+v", save.Clip)
	}

	// System anchors carry no footage.
	ht := DefinitionFor(ActionHalfTime)
	if ht.Clip != (ClipWindow{}) {
		t.Errorf("half_time clip = %+v", ht.Clip)
	}

	// Unknown categories fall back to the "other" definition.
	other := DefinitionFor(Action("nonsense"))
	if other.Action != ActionOther {
		t.Errorf("fallback definition = %+v", other)
	}
}

func TestParseAction(t *testing.T) {
	if a, ok := ParseAction(" Goal "); !ok || a != ActionGoal {
		t.Errorf("ParseAction(\" Goal \") = (%q, %v)", a, ok)
	}
	if _, ok := ParseAction("throw_in"); ok {
		t.Error("ParseAction accepted an unknown category")
	}
}
