package db

import (
	"fmt"
	"sort"
	"strings"

	"github.com/balkashynov/servicenote/internal/models"
)

// Kinds of records a search can return
const (
	KindStudent     = "student"
	KindReturnVisit = "rv"
	KindNote        = "note"
)

// Match quality, best first
const (
	MatchExact = iota
	MatchPrefix
	MatchSuffix
	MatchContains
)

// SearchHit is one record that matched a search
type SearchHit struct {
	Kind  string `json:"kind"`
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Field string `json:"field"`
	Match int    `json:"match"`
	Text  string `json:"text"`
}

type searchField struct {
	name  string
	value string
}

// Search looks for query in Bible students, return visits and notes. It is
// case insensitive; hits are ordered exact, prefix, suffix, then contains.
// A limit of zero or less returns every hit.
func (s *Store) Search(query string, limit int) ([]SearchHit, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	like := "%" + q + "%"

	hits := make([]SearchHit, 0)

	var students []models.BibleStudent
	err := s.database.
		Where("LOWER(student_name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(study_material) LIKE ? OR LOWER(note) LIKE ?", like, like, like, like).
		Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}
	for _, st := range students {
		hits = appendBestHit(hits, q, KindStudent, st.ID, st.StudentName, []searchField{
			{"name", st.StudentName},
			{"address", st.Address},
			{"material", st.StudyMaterial},
			{"note", st.Note},
		})
	}

	var persons []models.InterestedPerson
	err = s.database.
		Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(topic) LIKE ? OR LOWER(placement) LIKE ? OR LOWER(note) LIKE ?", like, like, like, like, like).
		Find(&persons).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search return visits: %w", err)
	}
	for _, p := range persons {
		hits = appendBestHit(hits, q, KindReturnVisit, p.ID, p.Name, []searchField{
			{"name", p.Name},
			{"address", p.Address},
			{"topic", p.Topic},
			{"placement", p.Placement},
			{"note", p.Note},
		})
	}

	var notes []models.Note
	err = s.database.
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like).
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	for _, n := range notes {
		hits = appendBestHit(hits, q, KindNote, n.ID, n.Title, []searchField{
			{"title", n.Title},
			{"content", n.Content},
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Match != hits[j].Match {
			return hits[i].Match < hits[j].Match
		}
		return strings.ToLower(hits[i].Title) < strings.ToLower(hits[j].Title)
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// appendBestHit adds the record once, under its best matching field
func appendBestHit(hits []SearchHit, q, kind string, id uint, title string, fields []searchField) []SearchHit {
	best := SearchHit{Match: -1}
	for _, f := range fields {
		match, ok := matchQuality(strings.ToLower(f.value), q)
		if !ok {
			continue
		}
		if best.Match == -1 || match < best.Match {
			best = SearchHit{Kind: kind, ID: id, Title: title, Field: f.name, Match: match, Text: f.value}
		}
	}
	if best.Match == -1 {
		return hits
	}
	return append(hits, best)
}

func matchQuality(value, q string) (int, bool) {
	switch {
	case value == q:
		return MatchExact, true
	case strings.HasPrefix(value, q):
		return MatchPrefix, true
	case strings.HasSuffix(value, q):
		return MatchSuffix, true
	case strings.Contains(value, q):
		return MatchContains, true
	}
	return 0, false
}
