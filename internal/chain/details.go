package chain

import "regexp"

// Details maps detail field names to the substrings extracted from the query.
// Keys are present only for fields that matched; an absent key means "not
// found". When nothing matched at all, the map holds the single StatusKey
// entry instead.
type Details map[string]string

// Detail field keys.
const (
	DetailAmount   = "amount"
	DetailDate     = "date"
	DetailCardType = "card_type"

	// StatusKey is the sentinel key used when no detail field matched.
	StatusKey = "status"
)

// StatusNoDetails is the sentinel value stored under StatusKey.
const StatusNoDetails = "No specific details found. More information may be required."

var (
	// amountPattern matches a dollar amount like $50 or $12.50.
	amountPattern = regexp.MustCompile(`\$\d+\.?\d*`)
	// datePattern matches MM/DD/YYYY, "<Month> D, YYYY", or the literal
	// words yesterday/today. Alternation order is load-bearing: it decides
	// which form wins when several date-like substrings are present.
	datePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}|\w+ \d{1,2}, \d{4}|yesterday|today`)
	// cardTypePattern is deliberately case-sensitive, unlike category
	// matching.
	cardTypePattern = regexp.MustCompile(`credit|debit`)
)

// ExtractDetails pulls amount, date and card-type substrings out of the query,
// keeping the leftmost match per field. The chosen category is accepted for
// symmetry with the other stages but does not influence extraction.
func ExtractDetails(query string, category Category) Details {
	details := Details{}

	if amount := amountPattern.FindString(query); amount != "" {
		details[DetailAmount] = amount
	}
	if date := datePattern.FindString(query); date != "" {
		details[DetailDate] = date
	}
	if cardType := cardTypePattern.FindString(query); cardType != "" {
		details[DetailCardType] = cardType
	}

	if len(details) == 0 {
		details[StatusKey] = StatusNoDetails
	}

	return details
}
