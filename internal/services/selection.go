package services

import (
	"errors"
	"fmt"
	"sync"

	"trail-route-service/internal/domain"
)

// ErrStaleFetch marks a fetch result that arrived after a newer query
// superseded it. The result is discarded, never applied.
var ErrStaleFetch = errors.New("route fetch superseded by a newer query")

// Session tracks the alternatives of the current route-planning flow and
// which one (if any) the user has picked.
//
// Three reachable shapes: Empty (no alternatives), Populated (alternatives,
// nothing picked) and Selected. Every mutation preserves the central
// invariant that the selected index is a valid index into the current
// alternatives, or absent. Alternatives are replaced wholesale, never
// edited in place.
//
// Each fetch is tagged with a monotonically increasing id so an answer for
// an abandoned query cannot overwrite the state of a newer one.
type Session struct {
	mu           sync.Mutex
	startText    string
	endText      string
	alternatives []domain.RouteAlternative
	selected     int // index into alternatives, -1 when nothing is picked
	issuedSeq    uint64
}

func NewSession() *Session {
	return &Session{selected: -1}
}

// BeginFetch resets the session to Empty for a new query and returns the
// fetch id the eventual result must present to SetAlternatives.
func (s *Session) BeginFetch(q domain.RouteQuery) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedSeq++
	s.startText = q.StartText
	s.endText = q.EndText
	s.alternatives = nil
	s.selected = -1
	return s.issuedSeq
}

// SetAlternatives installs a completed fetch result, clearing any previous
// selection. Results tagged with a superseded fetch id are dropped:
// ErrStaleFetch, state unchanged.
func (s *Session) SetAlternatives(fetchID uint64, alts []domain.RouteAlternative) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fetchID != s.issuedSeq {
		return fmt.Errorf("%w: fetch=%d current=%d", ErrStaleFetch, fetchID, s.issuedSeq)
	}
	s.alternatives = make([]domain.RouteAlternative, len(alts))
	copy(s.alternatives, alts)
	s.selected = -1
	return nil
}

// Select marks alternative i as the active pick. Out-of-range requests are
// rejected and leave the state unchanged; they indicate a caller bug, not a
// user condition.
func (s *Session) Select(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.alternatives) {
		return fmt.Errorf("select alternative: index %d out of range [0, %d)", i, len(s.alternatives))
	}
	s.selected = i
	return nil
}

// Clear resets the session to Empty from any state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startText = ""
	s.endText = ""
	s.alternatives = nil
	s.selected = -1
}

// Alternatives returns a copy of the current alternatives.
func (s *Session) Alternatives() []domain.RouteAlternative {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RouteAlternative, len(s.alternatives))
	copy(out, s.alternatives)
	return out
}

// Selected returns the picked alternative and its index, if any.
func (s *Session) Selected() (int, domain.RouteAlternative, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected < 0 {
		return -1, domain.RouteAlternative{}, false
	}
	return s.selected, s.alternatives[s.selected], true
}

// Query returns the endpoint texts of the query the current alternatives
// answer.
func (s *Session) Query() (startText, endText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startText, s.endText
}

// Pick is the selected alternative together with the query it answers,
// captured in one consistent snapshot.
type Pick struct {
	StartText   string
	EndText     string
	Index       int
	Alternative domain.RouteAlternative
}

// SelectedPick returns the active pick and its query texts under a single
// lock acquisition, so a concurrent BeginFetch can never pair an old
// alternative with new endpoint texts.
func (s *Session) SelectedPick() (Pick, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected < 0 {
		return Pick{}, false
	}
	return Pick{
		StartText:   s.startText,
		EndText:     s.endText,
		Index:       s.selected,
		Alternative: s.alternatives[s.selected],
	}, true
}
