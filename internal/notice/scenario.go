package notice

// ScenarioKey is the discrete classification derived from Facts that selects
// scenario-specific clause wording.
type ScenarioKey string

const (
	ScenarioDeedWithCommissioner   ScenarioKey = "DEED_WITH_COMMISSIONER"
	ScenarioDeedWithRegistrar      ScenarioKey = "DEED_WITH_REGISTRAR"
	ScenarioNoDeedWithCommissioner ScenarioKey = "NO_DEED_WITH_COMMISSIONER"
	ScenarioWaqfBoard              ScenarioKey = "WAQF_BOARD"
)

// ScenarioKey derives the scenario from the normalized facts. The Waqf check
// runs first: a Waqf is never classified by deed or authority.
func (f Facts) ScenarioKey() ScenarioKey {
	f = f.Normalized()
	switch {
	case f.TrustType == TrustTypeWaqf:
		return ScenarioWaqfBoard
	case f.CreationDocument == CreationTrustDeed && f.RegistrationAuthority == AuthorityRegistrarOfCompanies:
		return ScenarioDeedWithRegistrar
	case f.CreationDocument == CreationTrustDeed:
		return ScenarioDeedWithCommissioner
	default:
		return ScenarioNoDeedWithCommissioner
	}
}

// Shared paragraph texts. The deed and PTR wording is identical across both
// notice types, so the table below references these rather than repeating
// them per cell.
const (
	deedText = "The applicant trust has been created and established under a written Trust Deed. A self-certified copy of the Trust Deed has already been duly uploaded along with Form No. 10AB."

	ptrText = "The applicant trust is duly registered with the Office of the Charity Commissioner. A self-certified copy of the Public Trust Registration Certificate (PTR) has already been duly uploaded along with Form No. 10AB."

	rocText = "The applicant trust is duly registered with the Registrar of Companies under section 8 of the Companies Act, 2013. A self-certified copy of the Certificate of Incorporation has already been duly uploaded along with Form No. 10AB."

	noDeedText = "The applicant trust has not been created under a formal instrument. The trust is registered with the Office of the Charity Commissioner, and the Public Trust Registration Certificate (PTR) constitutes the document evidencing its creation. A self-certified copy of the PTR has already been duly uploaded along with Form No. 10AB."

	waqfDeedText = "The applicant trust is a Waqf created and established under a document issued by the Waqf Board. A self-certified copy of the said Waqf Board document has already been duly uploaded along with Form No. 10AB."

	waqfRegText = "The applicant trust is duly registered with the Waqf Board. A self-certified copy of the registration document issued by the Waqf Board has already been duly uploaded along with Form No. 10AB."
)

// scenarioMatrix maps notice type, then scenario, to the literal text of
// each scenario-governed clause slot. Slots absent from a cell keep their
// current text. Rule 17A governs clauses (a) and (c); Rule 11AA governs
// clauses (a) and (b). There is deliberately no Waqf row for Rule 11AA: a
// Waqf cannot reach an 80G lookup because facts are normalized first.
var scenarioMatrix = map[NoticeType]map[ScenarioKey]map[string]string{
	NoticeRule17A: {
		ScenarioDeedWithCommissioner:   {"a": deedText, "c": ptrText},
		ScenarioDeedWithRegistrar:      {"a": deedText, "c": rocText},
		ScenarioNoDeedWithCommissioner: {"a": noDeedText, "c": ptrText},
		ScenarioWaqfBoard:              {"a": waqfDeedText, "c": waqfRegText},
	},
	NoticeRule11AA: {
		ScenarioDeedWithCommissioner:   {"a": deedText, "b": ptrText},
		ScenarioDeedWithRegistrar:      {"a": deedText, "b": rocText},
		ScenarioNoDeedWithCommissioner: {"a": noDeedText, "b": ptrText},
	},
}

// ScenarioTexts returns the slot overrides for a notice type and scenario.
// The result is never mutated by callers; it may be nil for combinations the
// matrix does not define.
func ScenarioTexts(nt NoticeType, key ScenarioKey) map[string]string {
	return scenarioMatrix[nt][key]
}
