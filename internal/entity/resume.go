package entity

// ParsedResume is the structured view extracted from an uploaded resume.
// Every field is best-effort: missing sections stay empty, RawText always
// carries the full extracted text.
type ParsedResume struct {
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	RawText    string   `json:"raw_text"`
}
