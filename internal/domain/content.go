package domain

import "encoding/json"

// ContentResult holds CMS entries for one content type. Entries are passed
// through opaque; the service renders whatever the CMS returns.
type ContentResult struct {
	Total   int               `json:"total"`
	Entries []json.RawMessage `json:"entries"`
}
