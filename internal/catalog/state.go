package catalog

import (
	"slices"
	"sync"

	"product-catalog/internal/model"
	"product-catalog/internal/synonym"
)

// Token identifies one fetch. Only the most recently issued token may apply results.
type Token uint64

// State holds the client's view of the catalogue: the last full listing
// (baseline), the subset currently shown (visible) and the display options.
// It is safe for concurrent use.
type State struct {
	mu       sync.Mutex
	seq      Token
	baseline []model.Product
	visible  []model.Product
	query    string
	sort     SortKey
	view     ViewMode
	table    synonym.Table
}

// NewState creates an empty state using table for contextual search.
func NewState(table synonym.Table, sort SortKey, view ViewMode) *State {
	return &State{
		table: table,
		sort:  sort,
		view:  view,
	}
}

// BeginFetch issues a new token, invalidating every earlier one.
func (s *State) BeginFetch() Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// ApplyBaseline replaces the baseline and the visible set with a full listing.
// It reports false and changes nothing when token is stale.
func (s *State) ApplyBaseline(token Token, products []model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return false
	}
	s.baseline = products
	s.visible = products
	s.query = ""
	return true
}

// ApplyVisible replaces only the visible set, as a remote search does.
// It reports false and changes nothing when token is stale.
func (s *State) ApplyVisible(token Token, query string, products []model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return false
	}
	s.visible = products
	s.query = query
	return true
}

// Search filters the baseline locally with the contextual matcher.
// A blank query resets the visible set to the baseline. Results of fetches
// begun before the search are dropped when they arrive.
func (s *State) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.query = query
	s.visible = Filter(s.baseline, query, s.table)
}

// Reset clears the query and shows the baseline again.
func (s *State) Reset() {
	s.Search("")
}

// SetSort changes the display order.
func (s *State) SetSort(key SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = key
}

// SetView changes the presentation mode.
func (s *State) SetView(view ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// Query returns the active search query.
func (s *State) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// View returns the presentation mode.
func (s *State) View() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Baseline returns a copy of the last full listing.
func (s *State) Baseline() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.baseline)
}

// Displayed returns the visible products in the selected order.
func (s *State) Displayed() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Sort(s.visible, s.sort)
}
