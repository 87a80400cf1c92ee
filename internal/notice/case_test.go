package notice

import (
	"reflect"
	"testing"
)

func TestNewCaseDefaults(t *testing.T) {
	c := NewCase()
	if c.Facts.NoticeType != NoticeRule11AA {
		t.Fatalf("default notice type = %s, want %s", c.Facts.NoticeType, NoticeRule11AA)
	}
	if !reflect.DeepEqual(c.Clauses, DefaultClauses(NoticeRule11AA)) {
		t.Fatal("default clause set is not the 80G set")
	}
	if len(c.Activities) != 1 {
		t.Fatalf("expected one empty activity row, got %d", len(c.Activities))
	}
	if c.Activities[0].ID == "" {
		t.Fatal("activity row has no id")
	}
}

func TestSetPANUppercases(t *testing.T) {
	c := NewCase()
	c.SetPAN("  aabct1234f ")
	if c.PAN != "AABCT1234F" {
		t.Fatalf("PAN = %q", c.PAN)
	}
}

func TestSetFactsNormalizesAndResolvesAtomically(t *testing.T) {
	c := NewCase()
	c.SetFacts(Facts{
		TrustType:             TrustTypeWaqf,
		NoticeType:            NoticeRule11AA,
		RegistrationAuthority: AuthorityCharityCommissioner,
		CreationDocument:      CreationTrustDeed,
	})
	if c.Facts.NoticeType != NoticeRule17A {
		t.Fatal("Waqf did not force the 12A notice type")
	}
	if c.Facts.RegistrationAuthority != AuthorityWaqfBoard || c.Facts.CreationDocument != CreationWaqfDocument {
		t.Fatalf("Waqf lock incomplete: %+v", c.Facts)
	}
	if clauseText(t, c.Clauses, "a") != waqfDeedText {
		t.Fatal("clause list was not resolved with the locked facts")
	}
}

func TestEditAndDeleteClause(t *testing.T) {
	c := NewCase()
	id := c.Clauses[2].ID
	if err := c.EditClause(id, "amended"); err != nil {
		t.Fatalf("EditClause: %v", err)
	}
	if c.Clauses[2].Text != "amended" {
		t.Fatalf("edit not applied: %q", c.Clauses[2].Text)
	}
	if err := c.DeleteClause(id); err != nil {
		t.Fatalf("DeleteClause: %v", err)
	}
	for _, cl := range c.Clauses {
		if cl.ID == id {
			t.Fatal("clause still present after delete")
		}
	}
	if err := c.EditClause("nope", "x"); err != ErrClauseNotFound {
		t.Fatalf("expected ErrClauseNotFound, got %v", err)
	}
}

func TestRestoreDefaultClausesIsIdempotent(t *testing.T) {
	c := NewCase()
	c.EditClause(c.Clauses[0].ID, "scribble")
	c.DeleteClause(c.Clauses[1].ID)

	c.RestoreDefaultClauses()
	first := make([]ClauseResponse, len(c.Clauses))
	copy(first, c.Clauses)

	c.EditClause(c.Clauses[0].ID, "scribble again")
	c.RestoreDefaultClauses()

	if !reflect.DeepEqual(first, c.Clauses) {
		t.Fatal("restore defaults is not idempotent")
	}
	if !reflect.DeepEqual(c.Clauses, DefaultClauses(NoticeRule11AA)) {
		t.Fatal("restore did not produce the plain default set")
	}
}

func TestApplyExtractedFallsBackToExistingFacts(t *testing.T) {
	c := NewCase()
	c.ApplyExtracted(Extracted{
		TrustName:  " Shree Seva Trust ",
		PAN:        "aabct1234f",
		DIN:        "DIN123",
		Date:       "2026-04-01",
		NoticeType: NoticeRule17A,
	})
	if c.TrustName != "Shree Seva Trust" {
		t.Fatalf("trust name = %q", c.TrustName)
	}
	if c.PAN != "AABCT1234F" {
		t.Fatalf("pan = %q", c.PAN)
	}
	if c.Facts.NoticeType != NoticeRule17A {
		t.Fatal("notice type not applied")
	}
	if !reflect.DeepEqual(c.Clauses, DefaultClauses(NoticeRule17A)) {
		t.Fatal("clauses not switched to the 12A set")
	}
}

func TestActivityLedger(t *testing.T) {
	c := NewCase()
	row := c.AppendActivity()
	if len(c.Activities) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(c.Activities))
	}
	row.Year = "2023-24"
	row.Activity = "Medical camps"
	row.Expenditure = "250000"
	if err := c.UpdateActivity(row); err != nil {
		t.Fatalf("UpdateActivity: %v", err)
	}
	if c.Activities[1].Activity != "Medical camps" {
		t.Fatal("update not applied")
	}
	if err := c.DeleteActivity(row.ID); err != nil {
		t.Fatalf("DeleteActivity: %v", err)
	}
	if len(c.Activities) != 1 {
		t.Fatalf("expected 1 row after delete, got %d", len(c.Activities))
	}
}

func TestSnapshotRoundTripRecomputesClauses(t *testing.T) {
	c := NewCase()
	c.TrustName = "Shree Seva Trust"
	c.SetPAN("aabct1234f")
	c.SetFacts(factsFor(TrustTypeTrust, NoticeRule17A, AuthorityRegistrarOfCompanies, CreationTrustDeed))
	c.EditClause("12a_f", "a per-row edit that must not survive")
	c.DeleteClause("12a_k")
	c.SupplementaryContext = "filed under protest"

	restored := CaseFromSnapshot(c.Snapshot())

	if restored.TrustName != c.TrustName || restored.PAN != c.PAN {
		t.Fatal("identity fields lost")
	}
	if restored.Facts != c.Facts {
		t.Fatalf("facts lost: %+v", restored.Facts)
	}
	if restored.SupplementaryContext != "filed under protest" {
		t.Fatal("supplementary context lost")
	}
	// Clauses are recomputed from facts: the scenario override is present,
	// per-row edits and deletions are not.
	if clauseText(t, restored.Clauses, "c") != rocText {
		t.Fatal("restored clauses missing the registrar scenario text")
	}
	if clauseText(t, restored.Clauses, "f") != DefaultClauses(NoticeRule17A)[5].Text {
		t.Fatal("per-row edit leaked through the snapshot")
	}
	if len(restored.Clauses) != len(DefaultClauses(NoticeRule17A)) {
		t.Fatal("deleted row should reappear after restore")
	}
}

func TestSnapshotDoesNotShareLedgerRows(t *testing.T) {
	c := NewCase()
	snap := c.Snapshot()
	snap.Activities[0].Year = "mutated"
	if c.Activities[0].Year == "mutated" {
		t.Fatal("snapshot shares the activity slice with the case")
	}
}
