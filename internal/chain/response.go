package chain

// responseTemplates maps each category to its fixed customer-facing reply.
// Built once at process start and never mutated.
var responseTemplates = map[Category]string{
	CategoryAccountOpening:     "I can certainly help you with opening a new account. Are you an existing customer?",
	CategoryBillingIssue:       "I see you have a question about a bill. To clarify, could you please provide the date of the charge?",
	CategoryAccountAccess:      "I understand you're having trouble accessing your account. I'll need to verify your identity to proceed.",
	CategoryTransactionInquiry: "I can look into that transaction for you. Could you please provide the date and amount?",
	CategoryCardServices:       "For card-related services, I'll need your card number to proceed.",
	CategoryAccountStatement:   "I can help you with your account statement. Which month's statement are you looking for?",
	CategoryLoanInquiry:        "I can provide information on loans. Are you interested in a personal, auto, or home loan?",
	CategoryGeneralInformation: "I can help with that. What specific information are you looking for?",
}

// ResponseFallback is returned for a category outside the known set. Normal
// flow can never produce one, since candidate sets only ever contain known
// labels.
const ResponseFallback = "How can I assist you further today?"

// SynthesizeResponse maps the chosen category to its response template.
func SynthesizeResponse(category Category) string {
	if response, ok := responseTemplates[category]; ok {
		return response
	}
	return ResponseFallback
}
