// Package chain implements the staged interpretation pipeline that turns a
// free-text customer query into a structured support response.
//
// The pipeline is five ordered stages: intent restatement, category candidate
// generation, category selection, detail extraction, response synthesis.
// Control flow is strictly linear and every stage is a pure, total function
// over strings, so the package has no dependencies, no I/O and no shared
// state; concurrent Run calls are safe.
package chain

// Result collects the five intermediate stage outputs of one pipeline run.
type Result struct {
	Intent     string     `json:"intent"`
	Candidates []Category `json:"candidates"`
	Category   Category   `json:"category"`
	Details    Details    `json:"details"`
	Response   string     `json:"response"`
}

// Outputs returns the stage outputs as an ordered 5-element sequence, in
// stage order.
func (r *Result) Outputs() []interface{} {
	return []interface{}{r.Intent, r.Candidates, r.Category, r.Details, r.Response}
}

// Run executes the five stages in sequence over the given query and returns
// all intermediate outputs. This is the sole entry point of the pipeline;
// every entity it creates lives only for the duration of the call.
func Run(query string) *Result {
	intent := RestateIntent(query)
	candidates := CandidateCategories(query)
	category := ChooseCategory(candidates)
	details := ExtractDetails(query, category)
	response := SynthesizeResponse(category)

	return &Result{
		Intent:     intent,
		Candidates: candidates,
		Category:   category,
		Details:    details,
		Response:   response,
	}
}
