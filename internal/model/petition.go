package model

// Petition is one record of the petitions feed.
// Values are never mutated after decoding; lists are replaced wholesale.
type Petition struct {
	Title          string `json:"title"`
	Body           string `json:"body"`
	SignatureCount int    `json:"signatureCount"`
}
