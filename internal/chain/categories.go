package chain

import "strings"

// Category is one of the fixed support-topic labels a query can be routed to.
type Category string

const (
	CategoryAccountOpening     Category = "Account Opening"
	CategoryBillingIssue       Category = "Billing Issue"
	CategoryAccountAccess      Category = "Account Access"
	CategoryTransactionInquiry Category = "Transaction Inquiry"
	CategoryCardServices       Category = "Card Services"
	CategoryAccountStatement   Category = "Account Statement"
	CategoryLoanInquiry        Category = "Loan Inquiry"
	CategoryGeneralInformation Category = "General Information"
)

// AvailableCategories lists every known category in rule-evaluation order.
var AvailableCategories = []Category{
	CategoryAccountOpening,
	CategoryBillingIssue,
	CategoryAccountAccess,
	CategoryTransactionInquiry,
	CategoryCardServices,
	CategoryAccountStatement,
	CategoryLoanInquiry,
	CategoryGeneralInformation,
}

type categoryRule struct {
	keywords []string
	category Category
}

// categoryRules is evaluated in order; every matching rule appends its label.
// Each category appears in exactly one rule, so the candidate set is unique
// by construction.
var categoryRules = []categoryRule{
	{[]string{"open account", "new savings"}, CategoryAccountOpening},
	{[]string{"bill", "charge", "fee"}, CategoryBillingIssue},
	{[]string{"login", "password", "access"}, CategoryAccountAccess},
	{[]string{"transaction", "purchase"}, CategoryTransactionInquiry},
	{[]string{"card", "debit", "credit"}, CategoryCardServices},
	{[]string{"statement"}, CategoryAccountStatement},
	{[]string{"loan"}, CategoryLoanInquiry},
}

// CandidateCategories matches the query against the keyword rules and returns
// the ordered candidate set. Matching is case-insensitive substring matching
// over the full query text. The result is never empty: when no rule fires,
// General Information is injected as a fallback.
//
// General Information is also appended whenever the query contains the word
// "information", even if other rules already fired. That makes it a
// non-exclusive, possibly-late addition to an otherwise populated set; the
// behavior is intentional and callers must not deduplicate or reorder.
func CandidateCategories(query string) []Category {
	lowered := strings.ToLower(query)

	var candidates []Category
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				candidates = append(candidates, rule.category)
				break
			}
		}
	}

	if len(candidates) == 0 || strings.Contains(lowered, "information") {
		candidates = append(candidates, CategoryGeneralInformation)
	}

	return candidates
}

// ChooseCategory picks the single category the query is routed to: the first
// element of the candidate set. Positional priority is the whole tie-break;
// earlier rules are considered more specific.
//
// The candidate set is non-empty by construction in CandidateCategories. An
// empty set here means the rule table itself is broken, which is a
// programming fault rather than a runtime condition, so this panics.
func ChooseCategory(candidates []Category) Category {
	if len(candidates) == 0 {
		panic("chain: empty candidate set; category rule table is broken")
	}
	return candidates[0]
}
