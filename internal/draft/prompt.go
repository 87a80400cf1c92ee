// Package draft serializes a notice case into the reply-generation prompt
// and runs the drafting call. The prompt's layout instructions are the
// letter's structural contract: header lines, fixed address block, no
// salutation, point-wise clause responses in input order, CSR status for 80G
// only, financial summary, plea, and the fixed closing with no complimentary
// close. Changing this layout changes what gets filed.
package draft

import (
	"fmt"
	"strings"

	"github.com/joelkehle/trustreply/internal/notice"
)

const (
	csrReceivedNote = "The applicant trust has received CSR funds. Necessary documents like Form CSR-1, MOU with donor companies, and proof of activities conducted using CSR funds have been maintained and uploaded."

	csrNotReceivedNote = "The applicant trust has not received any CSR funds during the relevant period. Accordingly, requirements related to CSR fund documentation are not applicable."
)

// RuleLabel renders the statutory citation for one clause slot, e.g.
// "Rule 17A(2)(a)".
func RuleLabel(nt notice.NoticeType, rule string) string {
	if nt == notice.NoticeRule17A {
		return fmt.Sprintf("Rule 17A(2)(%s)", rule)
	}
	return fmt.Sprintf("Rule 11AA(2)(%s)", rule)
}

// ClauseSection renders the point-wise responses in clause order.
func ClauseSection(c *notice.Case) string {
	var parts []string
	for _, cl := range c.Clauses {
		parts = append(parts, RuleLabel(c.Facts.NoticeType, cl.Rule)+"\n"+cl.Text)
	}
	return strings.Join(parts, "\n\n")
}

// ActivityLines renders the financial ledger, skipping rows with neither a
// year nor an activity.
func ActivityLines(c *notice.Case) string {
	var lines []string
	for _, a := range c.Activities {
		if a.Year == "" && a.Activity == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("FY %s: %s (INR %s)", a.Year, a.Activity, a.Expenditure))
	}
	return strings.Join(lines, "\n")
}

// CSRNote returns the CSR status paragraph. Only an 80G reply carries one.
func CSRNote(c *notice.Case) string {
	if c.Facts.NoticeType != notice.NoticeRule11AA {
		return ""
	}
	if c.CSRReceived {
		return csrReceivedNote
	}
	return csrNotReceivedNote
}

// BuildPrompt assembles the full drafting prompt for the case.
func BuildPrompt(c *notice.Case) string {
	noticeCode, ruleCode := "80G", "11AA"
	if c.Facts.NoticeType == notice.NoticeRule17A {
		noticeCode, ruleCode = "12A", "17A"
	}

	var b strings.Builder
	b.WriteString("Draft a formal Income Tax notice reply. Strictly plain text.\n\n")

	b.WriteString("HEADER LAYOUT:\n")
	fmt.Fprintf(&b, "Line 1: %s\n", strings.ToUpper(c.TrustName))
	fmt.Fprintf(&b, "Line 2: PAN: %s\n\n", strings.ToUpper(c.PAN))

	b.WriteString("ADDRESS BLOCK:\n")
	b.WriteString("To,\nThe Commissioner of Income Tax (Exemptions)\nIncome Tax Department\n\n")

	b.WriteString("REF DATA:\n")
	fmt.Fprintf(&b, "Subject: Reply for %s Registration Notice (Submission under Rule %s)\n", noticeCode, ruleCode)
	fmt.Fprintf(&b, "Ref DIN: %s\n", c.DIN)
	fmt.Fprintf(&b, "Date: %s\n\n", c.NoticeDate)

	b.WriteString("SALUTATION RULE:\n")
	b.WriteString("DO NOT USE ANY SALUTATION (No \"Sir\", \"Madam\", etc.). Start text immediately.\n\n")

	b.WriteString("BODY:\n")
	b.WriteString("The applicant trust submits point-wise responses as under:\n\n")
	b.WriteString(ClauseSection(c))
	b.WriteString("\n\n")

	if note := CSRNote(c); note != "" {
		b.WriteString("CSR STATUS:\n")
		b.WriteString(note)
		b.WriteString("\n\n")
	}

	b.WriteString("FINANCIAL SUMMARY:\n")
	b.WriteString(ActivityLines(c))
	b.WriteString("\n\n")

	b.WriteString("PLEA:\n")
	b.WriteString(c.SupplementaryContext)
	b.WriteString("\n\n")

	b.WriteString("CLOSING RULE:\n")
	b.WriteString("DO NOT use \"Yours faithfully\", \"Sincerely\", or \"Regards\".\n")
	b.WriteString("End exactly with:\n\n")
	fmt.Fprintf(&b, "For %s\nAuthorized Signatory\n", c.TrustName)

	return b.String()
}
