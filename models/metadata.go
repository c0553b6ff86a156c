package models

// Fetch statuses recorded on ExtractedMetadata. The http_error_N and
// head_error_N variants carry the response status code.
const (
	StatusSuccess         = "success"
	StatusTimeout         = "timeout"
	StatusConnectionError = "connection_error"
	StatusUnknown         = "unknown"
)

// ExtractedMetadata is the result of one enrichment fetch. Only Title is
// required for a usable result; the rest is best-effort.
type ExtractedMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Domain      string `json:"domain"`
	Status      string `json:"status"` // success, timeout, connection_error, http_error_N, head_error_N, unknown

	// Article-level enrichment (from go-readability)
	SiteName string `json:"site_name,omitempty"`
	Author   string `json:"author,omitempty"`
	Image    string `json:"image,omitempty"`

	// Language of the extracted title+description, ISO-639-1 if detectable
	Language           string  `json:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty"`
}

// Usable reports whether the fetch produced a title worth substituting
// for the pattern-resolver fallback.
func (m *ExtractedMetadata) Usable() bool {
	return m != nil && m.Status == StatusSuccess && len(m.Title) > 5
}
