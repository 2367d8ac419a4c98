package render

import "sync"

type View string

const (
	ViewTeams           View = "teams"
	ViewPlayers         View = "players"
	ViewTeamSelect      View = "team_select"
	ViewInstituteSelect View = "institute_select"
	ViewPools           View = "pools"
	ViewPromotion       View = "promotion"
)

// Screen keeps the last rendered model of every view. Each render bumps the
// view's revision so callers can tell which views were touched.
type Screen struct {
	mu              sync.RWMutex
	teams           TeamTable
	players         PlayerTable
	teamSelect      Select
	instituteSelect Select
	pools           PoolsView
	promotion       PromotionView
	revisions       map[View]uint64
	onRender        func(View)
}

func NewScreen() *Screen {
	return &Screen{revisions: make(map[View]uint64)}
}

// OnRender registers a hook called after each render, outside the lock.
func (s *Screen) OnRender(fn func(View)) {
	s.mu.Lock()
	s.onRender = fn
	s.mu.Unlock()
}

func (s *Screen) RenderTeamTable(v TeamTable) {
	s.update(ViewTeams, func() { s.teams = v })
}

func (s *Screen) RenderPlayerTable(v PlayerTable) {
	s.update(ViewPlayers, func() { s.players = v })
}

func (s *Screen) RenderTeamSelect(v Select) {
	s.update(ViewTeamSelect, func() { s.teamSelect = v })
}

func (s *Screen) RenderInstituteSelect(v Select) {
	s.update(ViewInstituteSelect, func() { s.instituteSelect = v })
}

func (s *Screen) RenderPools(v PoolsView) {
	s.update(ViewPools, func() { s.pools = v })
}

func (s *Screen) RenderPromotion(v PromotionView) {
	s.update(ViewPromotion, func() { s.promotion = v })
}

func (s *Screen) TeamTable() TeamTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teams
}

func (s *Screen) PlayerTable() PlayerTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.players
}

func (s *Screen) TeamSelect() Select {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teamSelect
}

func (s *Screen) InstituteSelect() Select {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instituteSelect
}

func (s *Screen) Pools() PoolsView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pools
}

func (s *Screen) Promotion() PromotionView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.promotion
}

func (s *Screen) Revision(v View) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revisions[v]
}

func (s *Screen) update(v View, apply func()) {
	s.mu.Lock()
	apply()
	s.revisions[v]++
	hook := s.onRender
	s.mu.Unlock()

	if hook != nil {
		hook(v)
	}
}
