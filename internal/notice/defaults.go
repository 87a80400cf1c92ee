package notice

// The default clause sets below are the submitted legal content. The texts
// are fixed paragraphs, not templates: they must match the filed wording
// exactly and are never generated or paraphrased. The defaults correspond to
// the most common scenario (Trust Deed exists, registered with the Charity
// Commissioner); scenario-governed slots are overwritten by the resolver.

var rule17ADefaults = []ClauseResponse{
	{ID: "12a_a", Rule: "a", Label: "Instrument creating trust", Text: "The applicant trust has been created and established under a written Trust Deed. A self-certified copy of the Trust Deed has already been duly uploaded along with Form No. 10AB.", Applicable: true},
	{ID: "12a_b", Rule: "b", Label: "Creation Document (if no instrument)", Text: "The applicant trust has been created and established under a written Trust Deed.", Applicable: true},
	{ID: "12a_c", Rule: "c", Label: "Registration with Registrar", Text: "The applicant trust is duly registered with the Office of the Charity Commissioner. A self-certified copy of the Public Trust Registration Certificate (PTR) has already been duly uploaded along with Form No. 10AB.", Applicable: true},
	{ID: "12a_d", Rule: "d", Label: "FCRA 2010 Registration", Text: "The applicant trust is not registered under the Foreign Contribution (Regulation) Act, 2010. Accordingly, the provisions of Rule 17A(2)(d) are not applicable.", Applicable: true},
	{ID: "12a_e", Rule: "e", Label: "Existing Registration Order", Text: "The applicant trust was earlier granted registration under section 12A / 12AA / 12AB of the Income-tax Act, 1961. A self-certified copy of the earlier registration order has already been duly uploaded along with Form No. 10AB.", Applicable: true},
	{ID: "12a_f", Rule: "f", Label: "Order of Rejection (if any)", Text: "No order rejecting any earlier application for registration under section 12A / 12AA / 12AB of the Income-tax Act, 1961 has been passed in the case of the applicant trust.", Applicable: true},
	{ID: "12a_g", Rule: "g", Label: "Annual Accounts (Last 3 Years)", Text: "The applicant trust has duly furnished the annual accounts, including the Income and Expenditure Account and Balance Sheet, for the last three financial years, as applicable. Self-certified copies of the said annual accounts have already been duly uploaded along with Form No. 10AB.", Applicable: true},
	{ID: "12a_h", Rule: "h", Label: "Business Undertaking Accounts", Text: "The applicant trust does not hold any business undertaking within the meaning of section 11(4) of the Income-tax Act, 1961. Accordingly, the provisions of Rule 17A(2)(h) are not applicable.", Applicable: true},
	{ID: "12a_i", Rule: "i", Label: "Business Profits Accounts", Text: "The applicant trust does not carry on any business activity whose income is claimed as exempt under section 11(4A) of the Income-tax Act, 1961. Accordingly, the provisions of Rule 17A(2)(i) are not applicable.", Applicable: true},
	{ID: "12a_j", Rule: "j", Label: "Documents for Modification of Objects", Text: "There has been no modification in the objects of the applicant trust since its creation. Accordingly, the provisions of Rule 17A(2)(j) are not applicable.", Applicable: true},
	{ID: "12a_k", Rule: "k", Label: "Note on activities of applicant", Text: "The applicant trust submits a note on the charitable activities carried out during the last three financial years. The trust has been actively engaged in carrying out charitable activities strictly in accordance with its stated objects as per the Trust Deed / governing documents. Activity-wise details along with the expenditure incurred thereon have been furnished.", Applicable: true},
}

var rule11AADefaults = []ClauseResponse{
	{ID: "80g_a", Rule: "a", Label: "Instrument creating trust", Text: "The applicant trust has been created and established under a written Trust Deed. A self-certified copy of the Trust Deed has already been duly uploaded along with Form No. 10AB.", Applicable: true},
	{ID: "80g_b", Rule: "b", Label: "Registration with Registrar", Text: "The applicant trust is duly registered with the Office of the Charity Commissioner. A self-certified copy of the Public Trust Registration Certificate (PTR) has already been duly uploaded along with Form No. 10AB.", Applicable: true},
	{ID: "80g_c", Rule: "c", Label: "Objects Conformity", Text: "The objects of the applicant trust are charitable in nature and are in conformity with the provisions of section 80G(5) of the Income-tax Act, 1961.", Applicable: true},
	{ID: "80g_d", Rule: "d", Label: "Religious/Caste Benefit Clause", Text: "The applicant trust is not established for the benefit of any particular religious community or caste, and its income and assets are applied solely towards the attainment of its charitable objects.", Applicable: true},
	{ID: "80g_e", Rule: "e", Label: "Books of Account Maintenance", Text: "The applicant trust regularly maintains proper books of account in respect of its income and expenditure.", Applicable: true},
	{ID: "80g_f", Rule: "f", Label: "Dissolution Clause", Text: "The governing documents provide that, upon dissolution or winding up, the assets shall be applied solely for charitable purposes and shall not be distributed to any trustee or member.", Applicable: true},
	{ID: "80g_g", Rule: "g", Label: "Existing Approval Order", Text: "The applicant trust was earlier granted approval under section 80G. A self-certified copy of the earlier approval order has already been duly uploaded along with Form No. 10AB.", Applicable: true},
	{ID: "80g_h", Rule: "h", Label: "Note on activities of applicant", Text: "The applicant trust submits a note on the charitable activities carried out during the last three financial years. Supporting documentary evidence such as annual accounts and activity reports have been duly uploaded.", Applicable: true},
}

// DefaultClauses returns a fresh copy of the default clause set for the
// given notice type. Callers own the returned rows; no row identity is
// shared with previous copies.
func DefaultClauses(nt NoticeType) []ClauseResponse {
	var src []ClauseResponse
	if nt == NoticeRule17A {
		src = rule17ADefaults
	} else {
		src = rule11AADefaults
	}
	out := make([]ClauseResponse, len(src))
	copy(out, src)
	return out
}
