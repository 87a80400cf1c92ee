package notice

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrClauseNotFound = errors.New("clause not found")

// Case is the single working record of one notice reply. It is owned by the
// wizard controller and mutated only on its goroutine; Case itself carries
// no locking.
type Case struct {
	TrustName  string `json:"trust_name"`
	PAN        string `json:"pan"`
	DIN        string `json:"din"`
	NoticeDate string `json:"notice_date"`

	Facts       Facts `json:"facts"`
	CSRReceived bool  `json:"csr_received"`

	Clauses              []ClauseResponse `json:"clauses"`
	Activities           []ActivityRow    `json:"activities"`
	SupplementaryContext string           `json:"supplementary_context"`

	// Reply is the latest generated letter. It is user-editable and is not
	// an input to resolution.
	Reply string `json:"reply"`
}

func defaultFacts() Facts {
	return Facts{
		TrustType:             TrustTypeTrust,
		NoticeType:            NoticeRule11AA,
		RegistrationAuthority: AuthorityCharityCommissioner,
		CreationDocument:      CreationTrustDeed,
	}
}

// NewCase builds a case with the hard-coded defaults: the 80G clause set and
// one empty activity row.
func NewCase() *Case {
	return &Case{
		Facts:      defaultFacts(),
		Clauses:    DefaultClauses(NoticeRule11AA),
		Activities: []ActivityRow{{ID: uuid.NewString()}},
	}
}

// SetPAN stores the PAN uppercased, the only normalization applied to the
// identity fields.
func (c *Case) SetPAN(pan string) {
	c.PAN = strings.ToUpper(strings.TrimSpace(pan))
}

// SetFacts applies a fact mutation and re-resolves the clause list as one
// step, so the list is never observable against a stale or non-normalized
// fact set.
func (c *Case) SetFacts(f Facts) {
	c.Facts = f.Normalized()
	c.Clauses = Resolve(c.Facts, c.Clauses)
}

// ApplyExtracted populates the identity fields and notice type from an
// extraction result, then resolves. Empty extracted fields clear nothing:
// they overwrite, matching a fresh-intake flow where the case still holds
// defaults.
func (c *Case) ApplyExtracted(e Extracted) {
	c.TrustName = strings.TrimSpace(e.TrustName)
	c.SetPAN(e.PAN)
	c.DIN = strings.TrimSpace(e.DIN)
	c.NoticeDate = strings.TrimSpace(e.Date)
	f := c.Facts
	f.NoticeType = e.NoticeType
	c.SetFacts(f)
}

// EditClause replaces the text of the clause with the given id.
func (c *Case) EditClause(id, text string) error {
	for i := range c.Clauses {
		if c.Clauses[i].ID == id {
			c.Clauses[i].Text = text
			return nil
		}
	}
	return ErrClauseNotFound
}

// DeleteClause removes the clause with the given id. The deletion holds for
// the rest of the session; fact-driven resolution never reinstates the row.
func (c *Case) DeleteClause(id string) error {
	for i := range c.Clauses {
		if c.Clauses[i].ID == id {
			c.Clauses = append(c.Clauses[:i], c.Clauses[i+1:]...)
			return nil
		}
	}
	return ErrClauseNotFound
}

// RestoreDefaultClauses discards every edit and deletion and reinstates the
// active notice type's default set as-is. Deliberately not the same
// operation as resolution: no scenario overrides are applied.
func (c *Case) RestoreDefaultClauses() {
	c.Clauses = DefaultClauses(c.Facts.Normalized().NoticeType)
}

// AppendActivity adds an empty ledger row and returns it.
func (c *Case) AppendActivity() ActivityRow {
	row := ActivityRow{ID: uuid.NewString()}
	c.Activities = append(c.Activities, row)
	return row
}

// UpdateActivity replaces the fields of the ledger row with the given id.
func (c *Case) UpdateActivity(row ActivityRow) error {
	for i := range c.Activities {
		if c.Activities[i].ID == row.ID {
			c.Activities[i] = row
			return nil
		}
	}
	return ErrClauseNotFound
}

// DeleteActivity removes the ledger row with the given id.
func (c *Case) DeleteActivity(id string) error {
	for i := range c.Activities {
		if c.Activities[i].ID == id {
			c.Activities = append(c.Activities[:i], c.Activities[i+1:]...)
			return nil
		}
	}
	return ErrClauseNotFound
}

// Clone returns a deep copy of the case. Readers outside the controller's
// lock work on clones.
func (c *Case) Clone() *Case {
	out := *c
	out.Clauses = make([]ClauseResponse, len(c.Clauses))
	copy(out.Clauses, c.Clauses)
	out.Activities = make([]ActivityRow, len(c.Activities))
	copy(out.Activities, c.Activities)
	return &out
}

// Snapshot is the persisted projection of a case. Clauses are intentionally
// excluded: they are recomputed from facts on restore so a stale snapshot
// can never disagree with the scenario matrix.
type Snapshot struct {
	TrustName            string        `json:"trust_name"`
	PAN                  string        `json:"pan"`
	DIN                  string        `json:"din"`
	NoticeDate           string        `json:"notice_date"`
	Facts                Facts         `json:"facts"`
	CSRReceived          bool          `json:"csr_received"`
	Activities           []ActivityRow `json:"activities"`
	SupplementaryContext string        `json:"supplementary_context"`
}

func (c *Case) Snapshot() Snapshot {
	acts := make([]ActivityRow, len(c.Activities))
	copy(acts, c.Activities)
	return Snapshot{
		TrustName:            c.TrustName,
		PAN:                  c.PAN,
		DIN:                  c.DIN,
		NoticeDate:           c.NoticeDate,
		Facts:                c.Facts,
		CSRReceived:          c.CSRReceived,
		Activities:           acts,
		SupplementaryContext: c.SupplementaryContext,
	}
}

// CaseFromSnapshot rebuilds a case from a persisted snapshot. The clause
// list is resolved fresh from the restored facts.
func CaseFromSnapshot(s Snapshot) *Case {
	c := NewCase()
	c.TrustName = s.TrustName
	c.PAN = s.PAN
	c.DIN = s.DIN
	c.NoticeDate = s.NoticeDate
	c.CSRReceived = s.CSRReceived
	c.SupplementaryContext = s.SupplementaryContext
	if len(s.Activities) > 0 {
		c.Activities = make([]ActivityRow, len(s.Activities))
		copy(c.Activities, s.Activities)
	}
	c.Facts = s.Facts.Normalized()
	// Resolve against the restored type's own default set so the scenario
	// overrides for the restored facts are in effect immediately.
	c.Clauses = Resolve(c.Facts, DefaultClauses(c.Facts.NoticeType))
	return c
}
