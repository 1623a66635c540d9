package storage

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/retry"
)

// BestScore binds a Store to one variant so the game engine can load and save
// its best score. Writes are retried while the database is busy.
type BestScore struct {
	store   *Store
	variant string
	policy  retry.Policy
	logger  *log.Logger
}

// BestScore returns the best-score adapter for variant.
func (s *Store) BestScore(variant string, logger *log.Logger) *BestScore {
	b := &BestScore{
		store:   s,
		variant: variant,
		policy:  retry.DefaultPolicy(),
		logger:  logger,
	}
	b.policy.Retryable = IsBusy
	b.policy.OnRetry = func(attempt int, err error, wait time.Duration) {
		if b.logger != nil {
			b.logger.Warn("best score write busy, retrying",
				"variant", variant,
				"attempt", attempt,
				"wait", wait,
				"err", err,
			)
		}
	}
	return b
}

// LoadBestScore returns the stored best for the variant.
func (b *BestScore) LoadBestScore() (int, error) {
	var best int
	err := retry.Do(context.Background(), b.policy, func() error {
		var err error
		best, err = b.store.HighScore(b.variant)
		return err
	})
	return best, err
}

// SaveBestScore raises the stored best for the variant.
func (b *BestScore) SaveBestScore(score int) error {
	return retry.Do(context.Background(), b.policy, func() error {
		return b.store.SetBestScore(b.variant, score)
	})
}
