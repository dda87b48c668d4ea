package catalog

import "strings"

// idSanitizer replaces the path-separator characters Firestore forbids in
// document keys with hyphens.
var idSanitizer = strings.NewReplacer("/", "-", "\\", "-")

// SanitizeID converts a provider model identifier into a document-safe key.
// The mapping is deterministic and idempotent: sanitizing an already
// sanitized id returns it unchanged.
func SanitizeID(originalID string) string {
	return idSanitizer.Replace(originalID)
}
