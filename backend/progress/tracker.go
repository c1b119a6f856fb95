// Package progress owns all learner state: per-course completion sets, quiz
// scores, lab completions, the daily streak and the running statistics
// counters. Everything is persisted as JSON documents through the storage
// port; reads of missing or corrupt values fall back to empty defaults and
// never fail.
package progress

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"mlacademy/backend/models"
	"mlacademy/backend/storage"
)

// Storage keys, one JSON document per key.
const (
	keyCourseProgress = "courseProgress"
	keyQuizScores     = "quizScores"
	keyLabCompletion  = "labCompletion"
	keyEarnedBadges   = "earnedBadges"
	keyStatistics     = "statistics"
	keyLastActiveDate = "lastActiveDate"
	keyStreak         = "streak"
)

const dateLayout = "2006-01-02"

// PassingScore is the minimum quiz score counted as a pass.
const PassingScore = 70

// Tracker is the sole owner and mutator of stored progress state. Every
// mutation is a read-modify-write pair serialized by the mutex, so no
// lost updates occur between concurrent requests for the same profile.
type Tracker struct {
	mu    sync.Mutex
	store storage.Store
	now   func() time.Time
}

func NewTracker(store storage.Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// Initialize seeds empty documents for any missing keys and touches the
// streak, mirroring what happens on every app start.
func (t *Tracker) Initialize() {
	t.mu.Lock()
	defer t.mu.Unlock()

	seeds := map[string]string{
		keyCourseProgress: "{}",
		keyQuizScores:     "{}",
		keyLabCompletion:  "{}",
		keyEarnedBadges:   "[]",
		keyStatistics:     `{"totalLessonsCompleted":0,"totalCoursesCompleted":0,"totalQuizzesPassed":0,"totalLabsCompleted":0}`,
	}
	for key, value := range seeds {
		if _, err := t.store.Get(key); err != nil {
			_ = t.store.Set(key, value)
		}
	}
	t.updateStreakLocked()
}

// GetCourseProgress returns the stored record for a course, or an empty
// record if none exists.
func (t *Tracker) GetCourseProgress(courseID string) models.CourseProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.courseProgressLocked(courseID)
}

func (t *Tracker) courseProgressLocked(courseID string) models.CourseProgress {
	record, ok := t.courseProgressMapLocked()[courseID]
	if !ok {
		return models.CourseProgress{CompletedLessons: []string{}, CompletedModules: []string{}}
	}
	if record.CompletedLessons == nil {
		record.CompletedLessons = []string{}
	}
	if record.CompletedModules == nil {
		record.CompletedModules = []string{}
	}
	return record
}

// MarkLessonComplete adds the lesson (and optionally module) id to the
// course's completion sets. The set add is idempotent, but the
// totalLessonsCompleted counter increments on every call, including repeats
// for an already-completed lesson; the counter is a running activity tally,
// not a recount of the set.
func (t *Tracker) MarkLessonComplete(courseID, lessonID, moduleID string) models.CourseProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	all := t.courseProgressMapLocked()
	record := all[courseID]
	record.CompletedLessons = appendUnique(record.CompletedLessons, lessonID)
	if moduleID != "" {
		record.CompletedModules = appendUnique(record.CompletedModules, moduleID)
	}
	all[courseID] = record
	t.saveJSONLocked(keyCourseProgress, all)

	stats := t.statisticsLocked()
	stats.TotalLessonsCompleted++
	t.saveJSONLocked(keyStatistics, stats)

	t.updateStreakLocked()
	if record.CompletedModules == nil {
		record.CompletedModules = []string{}
	}
	return record
}

// SaveQuizScore overwrites the stored record for the quiz; only the latest
// attempt survives. Every submission with a passing score increments the
// totalQuizzesPassed counter, retakes included.
func (t *Tracker) SaveQuizScore(courseID, quizID string, score int, isPerfect, isFirstTry bool) models.QuizScore {
	t.mu.Lock()
	defer t.mu.Unlock()

	scores := t.quizScoresMapLocked()
	if scores[courseID] == nil {
		scores[courseID] = make(map[string]models.QuizScore)
	}
	record := models.QuizScore{
		Score:      score,
		IsPerfect:  isPerfect,
		IsFirstTry: isFirstTry,
		Date:       t.now().UTC(),
	}
	scores[courseID][quizID] = record
	t.saveJSONLocked(keyQuizScores, scores)

	if score >= PassingScore {
		stats := t.statisticsLocked()
		stats.TotalQuizzesPassed++
		t.saveJSONLocked(keyStatistics, stats)
	}

	t.updateStreakLocked()
	return record
}

// GetQuizScore returns the latest stored attempt, or nil when none exists.
func (t *Tracker) GetQuizScore(courseID, quizID string) *models.QuizScore {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.quizScoresMapLocked()[courseID][quizID]
	if !ok {
		return nil
	}
	return &record
}

// MarkLabComplete adds the lab id to the course's completion set and returns
// the updated set. Same counter semantics as MarkLessonComplete.
func (t *Tracker) MarkLabComplete(courseID, labID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	labs := t.labCompletionMapLocked()
	labs[courseID] = appendUnique(labs[courseID], labID)
	t.saveJSONLocked(keyLabCompletion, labs)

	stats := t.statisticsLocked()
	stats.TotalLabsCompleted++
	t.saveJSONLocked(keyStatistics, stats)

	t.updateStreakLocked()
	return labs[courseID]
}

// LabCompletion returns the completed lab ids for a course.
func (t *Tracker) LabCompletion(courseID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	labs := t.labCompletionMapLocked()[courseID]
	if labs == nil {
		return []string{}
	}
	return labs
}

// RecordCourseCompleted bumps the completed-courses counter. Called once per
// course, on the transition to fully completed.
func (t *Tracker) RecordCourseCompleted() {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := t.statisticsLocked()
	stats.TotalCoursesCompleted++
	t.saveJSONLocked(keyStatistics, stats)
}

// UpdateStreak advances the daily streak state machine and returns the
// current streak. Days are UTC calendar days.
func (t *Tracker) UpdateStreak() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.updateStreakLocked()
}

func (t *Tracker) updateStreakLocked() int {
	today := t.now().UTC().Format(dateLayout)
	lastActive, err := t.store.Get(keyLastActiveDate)
	streak := t.streakLocked()

	if err == nil && lastActive == today {
		return streak
	}

	yesterday := t.now().UTC().AddDate(0, 0, -1).Format(dateLayout)
	if err == nil && lastActive == yesterday {
		streak++
	} else {
		// First ever activity, or a gap of two or more days.
		streak = 1
	}

	_ = t.store.Set(keyStreak, strconv.Itoa(streak))
	_ = t.store.Set(keyLastActiveDate, today)
	return streak
}

// Streak returns the current streak without advancing it.
func (t *Tracker) Streak() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.streakLocked()
}

func (t *Tracker) streakLocked() int {
	raw, err := t.store.Get(keyStreak)
	if err != nil {
		return 0
	}
	streak, err := strconv.Atoi(raw)
	if err != nil || streak < 0 {
		return 0
	}
	return streak
}

// Statistics returns the running counters.
func (t *Tracker) Statistics() models.Statistics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statisticsLocked()
}

// EarnedBadges returns all permanently unlocked badges.
func (t *Tracker) EarnedBadges() []models.EarnedBadge {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.earnedBadgesLocked()
}

// EarnBadge records a badge as earned. Returns false if it already was;
// earned badges are never revoked.
func (t *Tracker) EarnBadge(badgeID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	earned := t.earnedBadgesLocked()
	for _, badge := range earned {
		if badge.ID == badgeID {
			return false
		}
	}
	earned = append(earned, models.EarnedBadge{ID: badgeID, EarnedDate: t.now().UTC()})
	t.saveJSONLocked(keyEarnedBadges, earned)
	return true
}

// Snapshot returns a frozen read-only view of all stored state, the input
// to one badge-evaluation pass.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		CourseProgress: t.courseProgressMapLocked(),
		QuizScores:     t.quizScoresMapLocked(),
		LabCompletion:  t.labCompletionMapLocked(),
		Statistics:     t.statisticsLocked(),
		Streak:         t.streakLocked(),
	}
}

func (t *Tracker) courseProgressMapLocked() map[string]models.CourseProgress {
	all := make(map[string]models.CourseProgress)
	t.loadJSONLocked(keyCourseProgress, &all)
	return all
}

func (t *Tracker) quizScoresMapLocked() map[string]map[string]models.QuizScore {
	all := make(map[string]map[string]models.QuizScore)
	t.loadJSONLocked(keyQuizScores, &all)
	return all
}

func (t *Tracker) labCompletionMapLocked() map[string][]string {
	all := make(map[string][]string)
	t.loadJSONLocked(keyLabCompletion, &all)
	return all
}

func (t *Tracker) statisticsLocked() models.Statistics {
	var stats models.Statistics
	t.loadJSONLocked(keyStatistics, &stats)
	return stats
}

func (t *Tracker) earnedBadgesLocked() []models.EarnedBadge {
	badges := []models.EarnedBadge{}
	t.loadJSONLocked(keyEarnedBadges, &badges)
	return badges
}

// loadJSONLocked decodes the document under key into out. Missing keys and
// malformed documents leave out at its empty default.
func (t *Tracker) loadJSONLocked(key string, out interface{}) {
	raw, err := t.store.Get(key)
	if err != nil {
		return
	}
	_ = json.Unmarshal([]byte(raw), out)
}

func (t *Tracker) saveJSONLocked(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = t.store.Set(key, string(data))
}

func appendUnique(set []string, id string) []string {
	for _, existing := range set {
		if existing == id {
			return set
		}
	}
	return append(set, id)
}
