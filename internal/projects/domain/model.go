package domain

import (
	"strings"
	"time"
)

// ProjectRecord is a single project entry in the store document. It is
// storage-agnostic and used across repository, service and HTTP layers.
type ProjectRecord struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Purpose   string   `json:"purpose"`
	Results   string   `json:"results"`
	Date      string   `json:"date"`
	Outcomes  []string `json:"outcomes"`
	Images    []string `json:"images"`
	CreatedAt string   `json:"createdAt"`

	// LegacyImage carries the singular "image" key found in old documents.
	// The repository folds it into Images on load and clears it, so it is
	// never re-emitted.
	LegacyImage string `json:"image,omitempty"`
}

// SplitLeaders turns the multi-line project-leaders text into an ordered
// list: one leader per line, trimmed, empty lines dropped.
func SplitLeaders(text string) []string {
	leaders := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			leaders = append(leaders, line)
		}
	}
	return leaders
}

// SortTime is the list-ordering key: the user-supplied date when it parses,
// otherwise the creation timestamp, otherwise the zero time.
func (p ProjectRecord) SortTime() time.Time {
	d := p.Date
	if len(d) > 10 {
		d = d[:10]
	}
	if t, err := time.Parse("2006-01-02", d); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		return t
	}
	return time.Time{}
}

// PrimaryImage returns the cover image reference, or empty when the record
// has no images.
func (p ProjectRecord) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
