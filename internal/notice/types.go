package notice

// TrustType distinguishes an ordinary public trust from a Waqf. A Waqf is
// governed by the Waqf Board and carries a fixed classification (see
// Facts.Normalized).
type TrustType string

const (
	TrustTypeTrust TrustType = "TRUST"
	TrustTypeWaqf  TrustType = "WAQF"
)

// NoticeType identifies which registration notice is being answered.
type NoticeType string

const (
	// NoticeRule17A is a notice on an application for registration under
	// section 12A/12AB, answered point-wise under Rule 17A(2).
	NoticeRule17A NoticeType = "RULE_17A"
	// NoticeRule11AA is a notice on an application for approval under
	// section 80G(5), answered point-wise under Rule 11AA(2).
	NoticeRule11AA NoticeType = "RULE_11AA"
)

type RegistrationAuthority string

const (
	AuthorityCharityCommissioner  RegistrationAuthority = "CHARITY_COMMISSIONER"
	AuthorityRegistrarOfCompanies RegistrationAuthority = "REGISTRAR_OF_COMPANIES"
	AuthorityWaqfBoard            RegistrationAuthority = "WAQF_BOARD"
)

type CreationDocument string

const (
	CreationTrustDeed    CreationDocument = "TRUST_DEED"
	CreationNoTrustDeed  CreationDocument = "NO_TRUST_DEED"
	CreationWaqfDocument CreationDocument = "WAQF_DOCUMENT"
)

// Facts are the discrete classification inputs that drive clause resolution.
type Facts struct {
	TrustType             TrustType             `json:"trust_type"`
	NoticeType            NoticeType            `json:"notice_type"`
	RegistrationAuthority RegistrationAuthority `json:"registration_authority"`
	CreationDocument      CreationDocument      `json:"creation_document"`
}

// Normalized applies the Waqf invariant: a Waqf is always a 12A case
// registered with the Waqf Board under a Waqf Board document. The three
// dependent fields are not independently configurable once the trust type is
// Waqf, so every consumer of Facts works on the normalized value.
func (f Facts) Normalized() Facts {
	if f.TrustType == TrustTypeWaqf {
		f.NoticeType = NoticeRule17A
		f.RegistrationAuthority = AuthorityWaqfBoard
		f.CreationDocument = CreationWaqfDocument
	}
	return f
}

// ClauseResponse is one point-wise answer in the reply. Rule is the clause
// letter within Rule 17A(2) or Rule 11AA(2); Text is the paragraph that will
// be submitted and may be hand-edited or scenario-overwritten.
type ClauseResponse struct {
	ID         string `json:"id"`
	Rule       string `json:"rule"`
	Label      string `json:"label"`
	Text       string `json:"text"`
	Applicable bool   `json:"applicable"`
}

// ActivityRow is one line of the financial activity ledger.
type ActivityRow struct {
	ID          string `json:"id"`
	Year        string `json:"year"`
	Activity    string `json:"activity"`
	Expenditure string `json:"expenditure"`
}

// Extracted is the strict partial result of notice document extraction.
// Every field may be empty; NoticeType is already normalized to a valid
// value by the extraction service (falling back to 80G when the notice type
// could not be recognized).
type Extracted struct {
	TrustName  string     `json:"trust_name"`
	PAN        string     `json:"pan"`
	DIN        string     `json:"din"`
	Date       string     `json:"date"`
	NoticeType NoticeType `json:"notice_type"`
}
