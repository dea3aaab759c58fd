// Package filter narrows a petition list by keyword.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/idilsaglam/petitions/internal/model"
)

// fold is stateless and safe for concurrent use.
var fold = cases.Fold()

// Matches reports whether keyword occurs in the petition's title or body,
// ignoring case. An empty keyword matches everything.
func Matches(p model.Petition, keyword string) bool {
	return matchFolded(p, fold.String(keyword))
}

func matchFolded(p model.Petition, k string) bool {
	return strings.Contains(fold.String(p.Title), k) || strings.Contains(fold.String(p.Body), k)
}

// Apply returns the petitions matching keyword, in their original order.
// An empty keyword returns petitions itself, not a copy.
func Apply(petitions []model.Petition, keyword string) []model.Petition {
	if keyword == "" {
		return petitions
	}
	k := fold.String(keyword)
	out := make([]model.Petition, 0, len(petitions))
	for _, p := range petitions {
		if matchFolded(p, k) {
			out = append(out, p)
		}
	}
	return out
}

// State holds a full list, the current keyword and the visible subsequence.
// Visible is recomputed in full whenever either input changes.
type State struct {
	all     []model.Petition
	visible []model.Petition
	keyword string
}

// SetAll replaces the full list.
func (s *State) SetAll(petitions []model.Petition) {
	s.all = petitions
	s.visible = Apply(s.all, s.keyword)
}

// SetKeyword replaces the keyword. An empty keyword clears the filter.
func (s *State) SetKeyword(keyword string) {
	s.keyword = keyword
	s.visible = Apply(s.all, s.keyword)
}

func (s *State) Keyword() string           { return s.keyword }
func (s *State) All() []model.Petition     { return s.all }
func (s *State) Visible() []model.Petition { return s.visible }
func (s *State) Filtered() bool            { return s.keyword != "" }
