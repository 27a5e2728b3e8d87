package movie

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	id          uuid.UUID
	title       string
	releaseDate *time.Time
	durationMin int
	status      Status
}

func ReconstructMovie(id uuid.UUID, title string, releaseDate *time.Time, durationMin int, status Status) *Movie {
	return &Movie{
		id:          id,
		title:       title,
		releaseDate: releaseDate,
		durationMin: durationMin,
		status:      status,
	}
}

// Refresh recomputes the status for today and reports whether it changed.
func (m *Movie) Refresh(today time.Time) bool {
	next := CalculateStatus(m.releaseDate, today)
	changed := next != m.status
	m.status = next
	return changed
}

func (m *Movie) ID() uuid.UUID           { return m.id }
func (m *Movie) Title() string           { return m.title }
func (m *Movie) ReleaseDate() *time.Time { return m.releaseDate }
func (m *Movie) DurationMin() int        { return m.durationMin }
func (m *Movie) Status() Status          { return m.status }
