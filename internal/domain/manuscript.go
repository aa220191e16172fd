package domain

import "time"

// Manuscript domain model — one episode's text attached to a work.
// Manuscript ids are NOT globally unique: seed entries use small per-work
// counters and created entries draw random ids, so collisions across works
// can happen. Lookups resolve duplicates by work insertion order.
type Manuscript struct {
	ID        int       `json:"id"`
	WorkID    int       `json:"workId"`
	Episode   int       `json:"episode"`
	Subtitle  string    `json:"subtitle"`
	Txt       string    `json:"txt"`
	CreatedAt time.Time `json:"createdAt"`
}

// ManuscriptPatch partial update payload for episode metadata
type ManuscriptPatch struct {
	Episode  *int    `json:"episode"`
	Subtitle *string `json:"subtitle"`
	Txt      *string `json:"txt"`
}

// Apply merges the patch onto the manuscript
func (p ManuscriptPatch) Apply(m *Manuscript) {
	if p.Episode != nil {
		m.Episode = *p.Episode
	}
	if p.Subtitle != nil {
		m.Subtitle = *p.Subtitle
	}
	if p.Txt != nil {
		m.Txt = *p.Txt
	}
}
