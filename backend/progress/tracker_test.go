package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mlacademy/backend/storage"
)

func newTestTracker() *Tracker {
	return NewTracker(storage.NewMemory())
}

func TestMarkLessonCompleteIdempotentSet(t *testing.T) {
	tracker := newTestTracker()

	tracker.MarkLessonComplete("ml-basics", "lesson-1-1", "module-1")
	record := tracker.MarkLessonComplete("ml-basics", "lesson-1-1", "module-1")

	assert.Equal(t, []string{"lesson-1-1"}, record.CompletedLessons)
	assert.Equal(t, []string{"module-1"}, record.CompletedModules)

	// The counter is a running tally and increments on the repeat call too.
	assert.Equal(t, 2, tracker.Statistics().TotalLessonsCompleted)
}

func TestMarkLessonCompleteWithoutModule(t *testing.T) {
	tracker := newTestTracker()

	record := tracker.MarkLessonComplete("ml-basics", "lesson-1-1", "")
	assert.Equal(t, []string{"lesson-1-1"}, record.CompletedLessons)
	assert.Empty(t, record.CompletedModules)
}

func TestGetCourseProgressDefault(t *testing.T) {
	tracker := newTestTracker()

	record := tracker.GetCourseProgress("unknown")
	assert.NotNil(t, record.CompletedLessons)
	assert.NotNil(t, record.CompletedModules)
	assert.Empty(t, record.CompletedLessons)
}

func TestSaveQuizScoreOverwrites(t *testing.T) {
	tracker := newTestTracker()

	tracker.SaveQuizScore("ml-basics", "quiz-1", 60, false, true)
	tracker.SaveQuizScore("ml-basics", "quiz-1", 90, false, false)

	record := tracker.GetQuizScore("ml-basics", "quiz-1")
	assert.NotNil(t, record)
	assert.Equal(t, 90, record.Score)
	assert.False(t, record.IsFirstTry)

	// Only the second attempt passed.
	assert.Equal(t, 1, tracker.Statistics().TotalQuizzesPassed)
}

func TestSaveQuizScoreCountsEveryPass(t *testing.T) {
	tracker := newTestTracker()

	tracker.SaveQuizScore("ml-basics", "quiz-1", 80, false, true)
	tracker.SaveQuizScore("ml-basics", "quiz-1", 100, true, false)

	// Retakes are not de-duplicated.
	assert.Equal(t, 2, tracker.Statistics().TotalQuizzesPassed)
}

func TestGetQuizScoreMissing(t *testing.T) {
	tracker := newTestTracker()
	assert.Nil(t, tracker.GetQuizScore("ml-basics", "quiz-1"))
}

func TestMarkLabCompleteIdempotentSet(t *testing.T) {
	tracker := newTestTracker()

	tracker.MarkLabComplete("ml-basics", "lab-1")
	labs := tracker.MarkLabComplete("ml-basics", "lab-1")

	assert.Equal(t, []string{"lab-1"}, labs)
	assert.Equal(t, 2, tracker.Statistics().TotalLabsCompleted)
}

func TestStreakTransitions(t *testing.T) {
	tracker := newTestTracker()

	day := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return day }

	// First ever activity.
	assert.Equal(t, 1, tracker.UpdateStreak())

	// Same day: no transition.
	assert.Equal(t, 1, tracker.UpdateStreak())

	// Next calendar day: streak continues.
	day = day.AddDate(0, 0, 1)
	assert.Equal(t, 2, tracker.UpdateStreak())

	// Two-day gap: streak resets.
	day = day.AddDate(0, 0, 2)
	assert.Equal(t, 1, tracker.UpdateStreak())

	assert.Equal(t, 1, tracker.Streak())
}

func TestStreakAdvancesOnLessonCompletion(t *testing.T) {
	tracker := newTestTracker()

	day := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	tracker.now = func() time.Time { return day }
	tracker.MarkLessonComplete("ml-basics", "lesson-1-1", "")
	assert.Equal(t, 1, tracker.Streak())

	day = day.AddDate(0, 0, 1)
	tracker.MarkLessonComplete("ml-basics", "lesson-1-2", "")
	assert.Equal(t, 2, tracker.Streak())
}

func TestCorruptStoredValuesReadAsDefaults(t *testing.T) {
	store := storage.NewMemory()
	_ = store.Set("courseProgress", "{not json")
	_ = store.Set("statistics", "also not json")
	_ = store.Set("streak", "NaN")

	tracker := NewTracker(store)

	assert.Empty(t, tracker.GetCourseProgress("ml-basics").CompletedLessons)
	assert.Equal(t, 0, tracker.Statistics().TotalLessonsCompleted)
	assert.Equal(t, 0, tracker.Streak())
}

func TestEarnBadgeOnce(t *testing.T) {
	tracker := newTestTracker()

	assert.True(t, tracker.EarnBadge("quiz_master"))
	assert.False(t, tracker.EarnBadge("quiz_master"))

	earned := tracker.EarnedBadges()
	assert.Len(t, earned, 1)
	assert.Equal(t, "quiz_master", earned[0].ID)
	assert.False(t, earned[0].EarnedDate.IsZero())
}

func TestInitializeSeedsDefaults(t *testing.T) {
	store := storage.NewMemory()
	tracker := NewTracker(store)
	tracker.Initialize()

	raw, err := store.Get("statistics")
	assert.NoError(t, err)
	assert.Contains(t, raw, "totalLessonsCompleted")

	// Initialization counts as activity for the streak.
	assert.Equal(t, 1, tracker.Streak())
}
