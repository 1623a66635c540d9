package snake

import "github.com/charmbracelet/log"

// BestScoreStore persists the best score across sessions.
type BestScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// MemoryStore is a BestScoreStore that keeps the value in memory.
type MemoryStore struct {
	Best  int
	Saves int
}

// LoadBestScore implements BestScoreStore.
func (m *MemoryStore) LoadBestScore() (int, error) {
	return m.Best, nil
}

// SaveBestScore implements BestScoreStore.
func (m *MemoryStore) SaveBestScore(score int) error {
	m.Best = score
	m.Saves++
	return nil
}

// ScoreTracker keeps the current and best score.
type ScoreTracker struct {
	store  BestScoreStore
	logger *log.Logger
	score  int
	best   int
}

// NewScoreTracker loads the best score from store. A load failure is logged
// and the best starts at zero.
func NewScoreTracker(store BestScoreStore, logger *log.Logger) *ScoreTracker {
	st := &ScoreTracker{store: store, logger: logger}
	best, err := store.LoadBestScore()
	if err != nil {
		logger.Warn("load best score failed", "err", err)
		return st
	}
	st.best = max(0, best)
	return st
}

// OnFoodConsumed adds BasePoints plus bonus. It returns the points gained and
// whether a new best was set.
func (st *ScoreTracker) OnFoodConsumed(bonus int) (int, bool) {
	gained := BasePoints + bonus
	st.score += gained
	if st.score <= st.best {
		return gained, false
	}
	st.best = st.score
	if err := st.store.SaveBestScore(st.best); err != nil {
		st.logger.Warn("save best score failed", "best", st.best, "err", err)
	}
	return gained, true
}

// Reset zeroes the current score. The best is kept.
func (st *ScoreTracker) Reset() {
	st.score = 0
}

// Score returns the current session score.
func (st *ScoreTracker) Score() int {
	return st.score
}

// Best returns the best score seen.
func (st *ScoreTracker) Best() int {
	return st.best
}
