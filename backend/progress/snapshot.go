package progress

import "mlacademy/backend/models"

// Snapshot is the frozen view of a profile's stored state handed to badge
// predicate evaluation. Absent entries read as empty values, so predicates
// stay total.
type Snapshot struct {
	CourseProgress map[string]models.CourseProgress
	QuizScores     map[string]map[string]models.QuizScore
	LabCompletion  map[string][]string
	Statistics     models.Statistics
	Streak         int
}
