package feed

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/idilsaglam/petitions/internal/model"
)

// Wire shapes use pointers so that absent and null fields can be told apart
// from zero values.
type wireFeed struct {
	Results *[]*wirePetition `json:"results"`
}

type wirePetition struct {
	Title          *string `json:"title"`
	Body           *string `json:"body"`
	SignatureCount *int    `json:"signatureCount"`
}

var errMissingResults = errors.New("missing results")

// Parse decodes a feed payload. Any decode or shape error discards the whole
// payload and returns a *ParseError.
func Parse(data []byte) ([]model.Petition, error) {
	var f wireFeed
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Index: -1, Err: err}
	}
	if f.Results == nil {
		return nil, &ParseError{Index: -1, Err: errMissingResults}
	}

	out := make([]model.Petition, 0, len(*f.Results))
	for i, w := range *f.Results {
		if err := w.check(); err != nil {
			return nil, &ParseError{Index: i, Err: err}
		}
		out = append(out, model.Petition{
			Title:          *w.Title,
			Body:           *w.Body,
			SignatureCount: *w.SignatureCount,
		})
	}
	return out, nil
}

func (w *wirePetition) check() error {
	switch {
	case w == nil:
		return errors.New("null petition")
	case w.Title == nil:
		return missing("title")
	case w.Body == nil:
		return missing("body")
	case w.SignatureCount == nil:
		return missing("signatureCount")
	}
	return nil
}

func missing(field string) error { return fmt.Errorf("missing field %q", field) }

// Encode renders petitions in the feed's shape, so that Parse can read the
// result back.
func Encode(petitions []model.Petition) ([]byte, error) {
	if petitions == nil {
		petitions = []model.Petition{}
	}
	b, err := json.MarshalIndent(struct {
		Results []model.Petition `json:"results"`
	}{petitions}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}
