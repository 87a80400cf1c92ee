package notice

import (
	"reflect"
	"testing"
)

func factsFor(tt TrustType, nt NoticeType, ra RegistrationAuthority, cd CreationDocument) Facts {
	return Facts{TrustType: tt, NoticeType: nt, RegistrationAuthority: ra, CreationDocument: cd}
}

func clauseText(t *testing.T, clauses []ClauseResponse, rule string) string {
	t.Helper()
	for _, c := range clauses {
		if c.Rule == rule {
			return c.Text
		}
	}
	t.Fatalf("no clause with rule %q", rule)
	return ""
}

func TestResolveIsDeterministic(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityRegistrarOfCompanies, CreationTrustDeed)
	current := DefaultClauses(NoticeRule17A)
	current[3].Text = "hand edited"

	a := Resolve(facts, current)
	b := Resolve(facts, current)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different outputs")
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityRegistrarOfCompanies, CreationTrustDeed)
	current := DefaultClauses(NoticeRule17A)
	before := make([]ClauseResponse, len(current))
	copy(before, current)

	Resolve(facts, current)
	if !reflect.DeepEqual(before, current) {
		t.Fatal("Resolve mutated its input slice")
	}
}

func TestNoticeTypeSwitchResetsAllEdits(t *testing.T) {
	current := DefaultClauses(NoticeRule11AA)
	for i := range current {
		current[i].Text = "user edit " + current[i].Rule
	}

	facts := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityCharityCommissioner, CreationTrustDeed)
	got := Resolve(facts, current)

	if !reflect.DeepEqual(got, DefaultClauses(NoticeRule17A)) {
		t.Fatal("switch did not yield the unmodified default set")
	}
}

func TestSwitchReturnsFreshCopies(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityCharityCommissioner, CreationTrustDeed)
	got := Resolve(facts, DefaultClauses(NoticeRule11AA))
	got[0].Text = "scribble"
	if DefaultClauses(NoticeRule17A)[0].Text == "scribble" {
		t.Fatal("resolved rows share identity with the default set")
	}
}

func TestScenarioOverwriteTouchesOnlyGovernedSlots(t *testing.T) {
	base := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityCharityCommissioner, CreationTrustDeed)
	current := Resolve(base, DefaultClauses(NoticeRule17A))

	// Hand-edit a slot the scenario matrix never touches.
	for i := range current {
		if current[i].Rule == "f" {
			current[i].Text = "edited clause f"
		}
	}

	moved := base
	moved.RegistrationAuthority = AuthorityRegistrarOfCompanies
	got := Resolve(moved, current)

	if text := clauseText(t, got, "c"); text != rocText {
		t.Fatalf("clause c = %q, want Registrar of Companies text", text)
	}
	if text := clauseText(t, got, "f"); text != "edited clause f" {
		t.Fatalf("clause f edit lost: %q", text)
	}
	// Every non-governed slot must be byte-identical.
	for _, c := range got {
		if c.Rule == "a" || c.Rule == "c" || c.Rule == "f" {
			continue
		}
		if c.Text != clauseText(t, current, c.Rule) {
			t.Fatalf("non-governed clause %s changed", c.Rule)
		}
	}
}

func TestDeedTextIndependentOfAuthority(t *testing.T) {
	withCommissioner := Resolve(
		factsFor(TrustTypeTrust, NoticeRule17A, AuthorityCharityCommissioner, CreationTrustDeed),
		DefaultClauses(NoticeRule17A))
	withRegistrar := Resolve(
		factsFor(TrustTypeTrust, NoticeRule17A, AuthorityRegistrarOfCompanies, CreationTrustDeed),
		DefaultClauses(NoticeRule17A))

	if clauseText(t, withCommissioner, "a") != clauseText(t, withRegistrar, "a") {
		t.Fatal("clause a depends on registration authority")
	}
	if clauseText(t, withCommissioner, "c") == clauseText(t, withRegistrar, "c") {
		t.Fatal("clause c should differ between commissioner and registrar")
	}
}

func TestCommissionerDeedScenarioMatchesDefaults(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityCharityCommissioner, CreationTrustDeed)
	got := Resolve(facts, DefaultClauses(NoticeRule17A))
	if clauseText(t, got, "a") != deedText {
		t.Fatal("clause a is not the trust deed text")
	}
	if clauseText(t, got, "c") != ptrText {
		t.Fatal("clause c is not the PTR registration text")
	}
}

func TestNoDeedScenario(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityCharityCommissioner, CreationNoTrustDeed)
	got := Resolve(facts, DefaultClauses(NoticeRule17A))
	if clauseText(t, got, "a") != noDeedText {
		t.Fatal("clause a is not the no-deed text")
	}
	if clauseText(t, got, "c") != ptrText {
		t.Fatal("clause c is not the PTR registration text")
	}
}

func TestWaqfScenarioIgnoresPriorClassification(t *testing.T) {
	// Authority and creation document deliberately contradict the Waqf
	// invariant; normalization must win.
	facts := factsFor(TrustTypeWaqf, NoticeRule11AA, AuthorityRegistrarOfCompanies, CreationTrustDeed)
	got := Resolve(facts, DefaultClauses(NoticeRule17A))
	if clauseText(t, got, "a") != waqfDeedText {
		t.Fatal("clause a is not the Waqf document text")
	}
	if clauseText(t, got, "c") != waqfRegText {
		t.Fatal("clause c is not the Waqf Board registration text")
	}
}

func TestSwitchAppliesScenarioOverrides(t *testing.T) {
	// A fresh case holds the 80G defaults. Marking the entity as a Waqf
	// normalizes the facts to a 12A notice, so resolution both switches the
	// set and applies the Waqf texts in the same step.
	facts := factsFor(TrustTypeWaqf, NoticeRule11AA, AuthorityCharityCommissioner, CreationTrustDeed)
	got := Resolve(facts, DefaultClauses(NoticeRule11AA))

	if clauseText(t, got, "a") != waqfDeedText {
		t.Fatalf("clause a = %q, want the Waqf document text", clauseText(t, got, "a"))
	}
	if clauseText(t, got, "c") != waqfRegText {
		t.Fatal("clause c is not the Waqf Board registration text")
	}
}

func TestSwitchAppliesRegistrarOverride(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityRegistrarOfCompanies, CreationTrustDeed)
	got := Resolve(facts, DefaultClauses(NoticeRule11AA))

	if clauseText(t, got, "c") != rocText {
		t.Fatal("clause c is not the Registrar of Companies text after a switch")
	}
}

func TestRule11AAScenarioGovernsSlotsAAndB(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule11AA, AuthorityRegistrarOfCompanies, CreationTrustDeed)
	got := Resolve(facts, DefaultClauses(NoticeRule11AA))
	if clauseText(t, got, "b") != rocText {
		t.Fatal("clause b is not the Registrar of Companies text")
	}
	if clauseText(t, got, "c") != DefaultClauses(NoticeRule11AA)[2].Text {
		t.Fatal("clause c should be untouched for Rule 11AA")
	}
}

func TestDeletedClauseIsNotResurrected(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityCharityCommissioner, CreationTrustDeed)
	current := Resolve(facts, DefaultClauses(NoticeRule17A))

	// Delete clause a, a slot the scenario matrix overwrites.
	var trimmed []ClauseResponse
	for _, c := range current {
		if c.Rule != "a" {
			trimmed = append(trimmed, c)
		}
	}

	moved := facts
	moved.RegistrationAuthority = AuthorityRegistrarOfCompanies
	got := Resolve(moved, trimmed)

	for _, c := range got {
		if c.Rule == "a" {
			t.Fatal("deleted clause a was resurrected")
		}
	}
	if len(got) != len(trimmed) {
		t.Fatalf("row count changed: got %d want %d", len(got), len(trimmed))
	}
}

func TestResolveKeepsDefaultOrder(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule11AA, AuthorityCharityCommissioner, CreationNoTrustDeed)
	got := Resolve(facts, DefaultClauses(NoticeRule11AA))
	for i, c := range got {
		if c.Rule != DefaultClauses(NoticeRule11AA)[i].Rule {
			t.Fatalf("row %d out of order: %s", i, c.Rule)
		}
	}
}

func TestResolveEmptyListStaysEmpty(t *testing.T) {
	facts := factsFor(TrustTypeTrust, NoticeRule17A, AuthorityCharityCommissioner, CreationTrustDeed)
	if got := Resolve(facts, []ClauseResponse{}); len(got) != 0 {
		t.Fatalf("empty list gained %d rows", len(got))
	}
}
