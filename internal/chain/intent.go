package chain

// RestateIntent wraps the raw query into a normalized intent statement. The
// original query text is embedded unmodified: no truncation, no whitespace or
// case normalization. Total over any string, including the empty string.
func RestateIntent(query string) string {
	return "The customer is asking about: " + query
}
