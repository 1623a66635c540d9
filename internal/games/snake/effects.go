package snake

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// ActiveEffect is the timed modifier currently in force.
type ActiveEffect struct {
	Kind     FoodKind
	Until    time.Duration // Engine clock time at which the effect ends
	Interval time.Duration // Tick interval while active
	WallPass bool
	expiry   EventID
}

// EffectManager owns the single timed modifier and the tick interval it
// implies. Instant kinds only yield a score bonus.
type EffectManager struct {
	base     time.Duration
	catalog  Catalog
	sched    *Scheduler
	logger   *log.Logger
	onChange func(interval time.Duration)

	active *ActiveEffect
}

// NewEffectManager creates a manager around the baseline interval. onChange,
// if set, is called whenever the effective interval changes.
func NewEffectManager(base time.Duration, catalog Catalog, sched *Scheduler, logger *log.Logger, onChange func(time.Duration)) *EffectManager {
	return &EffectManager{
		base:     base,
		catalog:  catalog,
		sched:    sched,
		logger:   logger,
		onChange: onChange,
	}
}

// Apply consumes an item of kind at clock time now and returns the bonus
// points it carries. Timed kinds replace whatever effect was active.
func (em *EffectManager) Apply(kind FoodKind, now time.Duration) int {
	spec, ok := em.catalog[kind]
	if !ok {
		return 0
	}
	if !spec.Timed() {
		return spec.Bonus
	}

	before := em.Interval()
	em.drop()

	interval := time.Duration(math.Round(float64(em.base) * spec.Multiplier))
	if interval <= 0 {
		interval = time.Millisecond
	}
	eff := &ActiveEffect{
		Kind:     kind,
		Until:    now + spec.Duration,
		Interval: interval,
		WallPass: spec.WallPass,
	}
	eff.expiry = em.sched.After(now, spec.Duration, em.expire)
	em.active = eff

	em.logger.Info("effect applied",
		"kind", kind,
		"interval", interval,
		"duration", spec.Duration,
		"wall_pass", spec.WallPass,
	)
	em.notify(before)
	return spec.Bonus
}

func (em *EffectManager) expire(time.Duration) {
	if em.active == nil {
		return
	}
	before := em.Interval()
	kind := em.active.Kind
	em.active = nil
	em.logger.Info("effect expired", "kind", kind)
	em.notify(before)
}

// drop cancels the active effect and its pending expiry without notifying.
func (em *EffectManager) drop() {
	if em.active == nil {
		return
	}
	em.sched.Cancel(em.active.expiry)
	em.active = nil
}

// Clear removes any active effect and restores the baseline.
func (em *EffectManager) Clear() {
	before := em.Interval()
	em.drop()
	em.notify(before)
}

func (em *EffectManager) notify(before time.Duration) {
	if after := em.Interval(); after != before && em.onChange != nil {
		em.onChange(after)
	}
}

// Interval returns the effective tick interval.
func (em *EffectManager) Interval() time.Duration {
	if em.active != nil {
		return em.active.Interval
	}
	return em.base
}

// BaseInterval returns the interval with no effect applied.
func (em *EffectManager) BaseInterval() time.Duration {
	return em.base
}

// WallPass reports whether the head currently wraps at the edges.
func (em *EffectManager) WallPass() bool {
	return em.active != nil && em.active.WallPass
}

// Active returns the effect in force, if any.
func (em *EffectManager) Active() (ActiveEffect, bool) {
	if em.active == nil {
		return ActiveEffect{}, false
	}
	return *em.active, true
}

// Remaining returns the time left on the active effect.
func (em *EffectManager) Remaining(now time.Duration) time.Duration {
	if em.active == nil {
		return 0
	}
	return max(0, em.active.Until-now)
}

// expiryID exposes the pending expiry event for tests.
func (em *EffectManager) expiryID() EventID {
	if em.active == nil {
		return 0
	}
	return em.active.expiry
}
