package generate

// ResultKind tags which half of the Result union is populated.
type ResultKind string

const (
	ResultKindText  ResultKind = "text"
	ResultKindImage ResultKind = "image"
)

// Placeholder values returned when a provider responds successfully but
// without usable content.
const (
	textPlaceholder  = "No response generated."
	imagePlaceholder = "https://via.placeholder.com/512?text=No+Image+Generated"
)

// Result is the normalized outcome of one generation call. Text is set for
// text results, ImageURL for image results; Kind says which.
type Result struct {
	Kind     ResultKind `json:"kind"`
	Text     string     `json:"text,omitempty"`
	ImageURL string     `json:"imageUrl,omitempty"`
	Model    string     `json:"model"`
	Provider string     `json:"provider"`
}
