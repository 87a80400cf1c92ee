package notice

// Resolve derives the clause list for the given facts from the current list.
// It is a pure function: no I/O, no error conditions, identical inputs yield
// identical output, and the input slice is never mutated.
//
// Two distinct behaviors, chosen by whether the notice type changed:
//
//   - Notice type switch: every row is replaced with a fresh copy of the new
//     default set, and the scenario overrides for the current facts are then
//     applied to it. A switch invalidates all prior per-row edits.
//   - Same notice type: only the slots governed by the current scenario are
//     overwritten; every other row, including hand-edited text, is carried
//     through untouched. Rows the user deleted are not resurrected.
//
// The switch is detected from the rows themselves rather than an explicit
// flag: every default row carries the identity of the set it belongs to, so
// any row outside the active set's identity space means the list was built
// for the other notice type.
func Resolve(facts Facts, current []ClauseResponse) []ClauseResponse {
	facts = facts.Normalized()
	defaults := DefaultClauses(facts.NoticeType)

	if !drawnFrom(current, defaults) {
		current = defaults
	}

	overrides := ScenarioTexts(facts.NoticeType, facts.ScenarioKey())
	out := make([]ClauseResponse, len(current))
	copy(out, current)
	for i := range out {
		if text, ok := overrides[out[i].Rule]; ok {
			out[i].Text = text
		}
	}
	return out
}

// drawnFrom reports whether every row in current originates from the given
// default set. An empty current list is vacuously true: all rows deleted is
// a valid state of the active set, not a set switch.
func drawnFrom(current, defaults []ClauseResponse) bool {
	ids := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		ids[d.ID] = true
	}
	for _, c := range current {
		if !ids[c.ID] {
			return false
		}
	}
	return true
}
