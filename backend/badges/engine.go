package badges

import (
	"mlacademy/backend/catalog"
	"mlacademy/backend/progress"
)

// Engine evaluates unearned badges against the tracker's state and persists
// newly unlocked ones through it.
type Engine struct {
	tracker *progress.Tracker
}

func NewEngine(tracker *progress.Tracker) *Engine {
	return &Engine{tracker: tracker}
}

// CheckAndUnlock evaluates every not-yet-earned badge against one frozen
// snapshot and returns the newly unlocked definitions, in definition order.
// The snapshot is taken before evaluation, so a badge unlocking cannot
// enable another within the same pass.
func (e *Engine) CheckAndUnlock(cat *catalog.Catalog, overallPercent int) []Badge {
	snapshot := e.tracker.Snapshot()

	earned := make(map[string]bool)
	for _, badge := range e.tracker.EarnedBadges() {
		earned[badge.ID] = true
	}

	var unlocked []Badge
	for _, badge := range All {
		if earned[badge.ID] {
			continue
		}
		if badge.Check(snapshot, cat, overallPercent) {
			e.tracker.EarnBadge(badge.ID)
			unlocked = append(unlocked, badge)
		}
	}
	return unlocked
}

// ByID returns the badge definition with the given id, or nil.
func ByID(id string) *Badge {
	for i := range All {
		if All[i].ID == id {
			return &All[i]
		}
	}
	return nil
}

// ByCategory returns all badge definitions in a category, in definition
// order.
func ByCategory(category string) []Badge {
	var result []Badge
	for _, badge := range All {
		if badge.Category == category {
			result = append(result, badge)
		}
	}
	return result
}
