package progress

import (
	"math"

	"mlacademy/backend/catalog"
)

// Aggregator derives completion percentages from tracked progress plus the
// immutable catalog. It only reads; all writes go through the Tracker.
type Aggregator struct {
	tracker *Tracker
}

func NewAggregator(tracker *Tracker) *Aggregator {
	return &Aggregator{tracker: tracker}
}

// CourseProgress returns the course completion percentage, rounded half-up
// and clamped to 100. A stale store can hold more completed-lesson ids than
// the catalog currently has lessons (content edits); clamping keeps that
// from surfacing as >100%.
func (a *Aggregator) CourseProgress(courseID string, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	completed := len(a.tracker.GetCourseProgress(courseID).CompletedLessons)
	return percent(completed, totalLessons)
}

// OverallProgress returns the completion percentage across the whole
// catalog: completed lessons over total lessons, all courses summed.
func (a *Aggregator) OverallProgress(cat *catalog.Catalog) int {
	totalLessons := cat.TotalLessonsAll()
	if totalLessons == 0 {
		return 0
	}
	completed := 0
	for i := range cat.Courses {
		completed += len(a.tracker.GetCourseProgress(cat.Courses[i].ID).CompletedLessons)
	}
	return percent(completed, totalLessons)
}

// IsCourseCompleted reports whether the completed-lesson count has reached
// the course total.
func (a *Aggregator) IsCourseCompleted(courseID string, totalLessons int) bool {
	return len(a.tracker.GetCourseProgress(courseID).CompletedLessons) >= totalLessons
}

// CompletedCoursesCount counts catalog courses that are fully completed.
func (a *Aggregator) CompletedCoursesCount(cat *catalog.Catalog) int {
	count := 0
	for i := range cat.Courses {
		course := &cat.Courses[i]
		if a.IsCourseCompleted(course.ID, catalog.TotalLessons(course)) {
			count++
		}
	}
	return count
}

func percent(part, total int) int {
	p := int(math.Round(float64(part) / float64(total) * 100))
	if p > 100 {
		p = 100
	}
	return p
}
