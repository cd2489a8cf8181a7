// internal/weather/models.go
package weather

// Report is the subset of the OpenWeather current-weather payload the
// dashboard displays. Persistence keeps the full payload; this struct is only
// for display and validation.
type Report struct {
	Name    string            `json:"name"`
	Main    ReportMain        `json:"main"`
	Weather []ReportCondition `json:"weather"`
}

type ReportMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
}

type ReportCondition struct {
	Description string `json:"description"`
}
