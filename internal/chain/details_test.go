package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDetails(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Details
	}{
		{
			name:     "whole dollar amount",
			query:    "a charge of $50 appeared",
			expected: Details{DetailAmount: "$50"},
		},
		{
			name:     "amount with cents",
			query:    "refund me $12.50 please",
			expected: Details{DetailAmount: "$12.50"},
		},
		{
			name:     "leftmost amount wins",
			query:    "$50.25 was charged, not $3",
			expected: Details{DetailAmount: "$50.25"},
		},
		{
			name:     "numeric date",
			query:    "it happened on 01/02/2024",
			expected: Details{DetailDate: "01/02/2024"},
		},
		{
			name:     "worded date",
			query:    "the visit was March 5, 2024 in the morning",
			expected: Details{DetailDate: "March 5, 2024"},
		},
		{
			name:     "literal yesterday",
			query:    "it was yesterday",
			expected: Details{DetailDate: "yesterday"},
		},
		{
			name:     "leftmost date wins across forms",
			query:    "today I noticed the 01/02/2024 entry",
			expected: Details{DetailDate: "today"},
		},
		{
			name:     "card type is case-sensitive",
			query:    "my Credit Card",
			expected: Details{StatusKey: StatusNoDetails},
		},
		{
			name:     "leftmost card type wins",
			query:    "debit or credit, not sure",
			expected: Details{DetailCardType: "debit"},
		},
		{
			name:     "all three fields",
			query:    "a $9.99 credit charge yesterday",
			expected: Details{DetailAmount: "$9.99", DetailDate: "yesterday", DetailCardType: "credit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractDetails(tt.query, CategoryGeneralInformation))
		})
	}
}

func TestExtractDetails_NoFields(t *testing.T) {
	details := ExtractDetails("I paid $ fifty", CategoryBillingIssue)
	assert.Equal(t, Details{StatusKey: StatusNoDetails}, details)
}

func TestExtractDetails_CategoryDoesNotInfluenceExtraction(t *testing.T) {
	query := "a transaction for $50 yesterday on credit"
	for _, category := range AvailableCategories {
		assert.Equal(t, ExtractDetails(query, CategoryGeneralInformation), ExtractDetails(query, category))
	}
}
