// Package badges holds the static achievement definitions and the engine
// that evaluates them against a progress snapshot. Unlocking is one-way: an
// earned badge is never re-evaluated or revoked.
package badges

import (
	"mlacademy/backend/catalog"
	"mlacademy/backend/progress"
)

// Badge categories.
const (
	CategoryCourseCompletion = "course_completion"
	CategoryQuizMastery      = "quiz_mastery"
	CategoryLabExcellence    = "lab_excellence"
	CategoryMilestone        = "milestone"
	CategoryStreak           = "streak"
	CategorySpecial          = "special"
)

// CheckFunc is a pure predicate over one frozen snapshot. Predicates must
// be total: absent snapshot fields read as zero values.
type CheckFunc func(s progress.Snapshot, cat *catalog.Catalog, overallPercent int) bool

type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Rarity      string    `json:"rarity"` // common, rare, epic, legendary
	Icon        string    `json:"icon"`
	Check       CheckFunc `json:"-"`
}

// All is the fixed badge set, in evaluation order.
var All = []Badge{
	{
		ID:          "course_complete_ml_basics",
		Name:        "ML Basics Master",
		Description: "Completed the Machine Learning Basics course",
		Category:    CategoryCourseCompletion,
		Rarity:      "common",
		Icon:        "🎓",
		Check:       courseComplete("ml-basics"),
	},
	{
		ID:          "course_complete_deep_learning",
		Name:        "Deep Learning Expert",
		Description: "Completed the Deep Learning Fundamentals course",
		Category:    CategoryCourseCompletion,
		Rarity:      "common",
		Icon:        "🧠",
		Check:       courseComplete("deep-learning"),
	},
	{
		ID:          "course_complete_nlp",
		Name:        "NLP Specialist",
		Description: "Completed the Natural Language Processing course",
		Category:    CategoryCourseCompletion,
		Rarity:      "common",
		Icon:        "💬",
		Check:       courseComplete("nlp"),
	},
	{
		ID:          "quiz_perfect_score",
		Name:        "Perfect Score",
		Description: "Achieved a perfect score on any quiz",
		Category:    CategoryQuizMastery,
		Rarity:      "rare",
		Icon:        "⭐",
		Check: func(s progress.Snapshot, _ *catalog.Catalog, _ int) bool {
			for _, courseScores := range s.QuizScores {
				for _, quiz := range courseScores {
					if quiz.IsPerfect {
						return true
					}
				}
			}
			return false
		},
	},
	{
		ID:          "quiz_first_try",
		Name:        "First Try Champion",
		Description: "Passed a quiz on the first attempt",
		Category:    CategoryQuizMastery,
		Rarity:      "common",
		Icon:        "🎯",
		Check: func(s progress.Snapshot, _ *catalog.Catalog, _ int) bool {
			for _, courseScores := range s.QuizScores {
				for _, quiz := range courseScores {
					if quiz.IsFirstTry && quiz.Score >= progress.PassingScore {
						return true
					}
				}
			}
			return false
		},
	},
	{
		ID:          "quiz_master",
		Name:        "Quiz Master",
		Description: "Passed 5 quizzes",
		Category:    CategoryQuizMastery,
		Rarity:      "rare",
		Icon:        "🏆",
		Check:       quizzesPassed(5),
	},
	{
		ID:          "lab_completer",
		Name:        "Lab Completer",
		Description: "Completed your first lab",
		Category:    CategoryLabExcellence,
		Rarity:      "common",
		Icon:        "🔬",
		Check:       labsCompleted(1),
	},
	{
		ID:          "lab_master",
		Name:        "Lab Master",
		Description: "Completed 5 labs",
		Category:    CategoryLabExcellence,
		Rarity:      "rare",
		Icon:        "⚗️",
		Check:       labsCompleted(5),
	},
	{
		ID:          "milestone_10_lessons",
		Name:        "Getting Started",
		Description: "Completed 10 lessons",
		Category:    CategoryMilestone,
		Rarity:      "common",
		Icon:        "🌱",
		Check:       lessonsCompleted(10),
	},
	{
		ID:          "milestone_25_lessons",
		Name:        "Dedicated Learner",
		Description: "Completed 25 lessons",
		Category:    CategoryMilestone,
		Rarity:      "common",
		Icon:        "📚",
		Check:       lessonsCompleted(25),
	},
	{
		ID:          "milestone_50_lessons",
		Name:        "Knowledge Seeker",
		Description: "Completed 50 lessons",
		Category:    CategoryMilestone,
		Rarity:      "rare",
		Icon:        "🎓",
		Check:       lessonsCompleted(50),
	},
	{
		ID:          "milestone_25_percent",
		Name:        "Quarter Way There",
		Description: "Reached 25% overall progress",
		Category:    CategoryMilestone,
		Rarity:      "common",
		Icon:        "📊",
		Check:       overallPercentAtLeast(25),
	},
	{
		ID:          "milestone_50_percent",
		Name:        "Halfway Hero",
		Description: "Reached 50% overall progress",
		Category:    CategoryMilestone,
		Rarity:      "rare",
		Icon:        "🎯",
		Check:       overallPercentAtLeast(50),
	},
	{
		ID:          "milestone_100_percent",
		Name:        "Completionist",
		Description: "Reached 100% overall progress",
		Category:    CategoryMilestone,
		Rarity:      "legendary",
		Icon:        "👑",
		Check:       overallPercentAtLeast(100),
	},
	{
		ID:          "streak_3_days",
		Name:        "On a Roll",
		Description: "Maintained a 3-day learning streak",
		Category:    CategoryStreak,
		Rarity:      "common",
		Icon:        "🔥",
		Check:       streakAtLeast(3),
	},
	{
		ID:          "streak_7_days",
		Name:        "Week Warrior",
		Description: "Maintained a 7-day learning streak",
		Category:    CategoryStreak,
		Rarity:      "rare",
		Icon:        "💪",
		Check:       streakAtLeast(7),
	},
	{
		ID:          "streak_30_days",
		Name:        "Monthly Master",
		Description: "Maintained a 30-day learning streak",
		Category:    CategoryStreak,
		Rarity:      "epic",
		Icon:        "🌟",
		Check:       streakAtLeast(30),
	},
	{
		ID:          "first_course_started",
		Name:        "First Steps",
		Description: "Started your first course",
		Category:    CategorySpecial,
		Rarity:      "common",
		Icon:        "🚀",
		Check: func(s progress.Snapshot, _ *catalog.Catalog, _ int) bool {
			return len(s.CourseProgress) > 0
		},
	},
	{
		ID:          "first_quiz_passed",
		Name:        "Quiz Novice",
		Description: "Passed your first quiz",
		Category:    CategorySpecial,
		Rarity:      "common",
		Icon:        "✅",
		Check:       quizzesPassed(1),
	},
}

// courseComplete matches when every catalog lesson of the course is in the
// completed set. A course without any progress record never matches, even
// if it has zero lessons.
func courseComplete(courseID string) CheckFunc {
	return func(s progress.Snapshot, cat *catalog.Catalog, _ int) bool {
		course := cat.CourseByID(courseID)
		if course == nil {
			return false
		}
		record, ok := s.CourseProgress[courseID]
		if !ok {
			return false
		}
		return len(record.CompletedLessons) >= catalog.TotalLessons(course)
	}
}

func quizzesPassed(n int) CheckFunc {
	return func(s progress.Snapshot, _ *catalog.Catalog, _ int) bool {
		return s.Statistics.TotalQuizzesPassed >= n
	}
}

func labsCompleted(n int) CheckFunc {
	return func(s progress.Snapshot, _ *catalog.Catalog, _ int) bool {
		return s.Statistics.TotalLabsCompleted >= n
	}
}

func lessonsCompleted(n int) CheckFunc {
	return func(s progress.Snapshot, _ *catalog.Catalog, _ int) bool {
		return s.Statistics.TotalLessonsCompleted >= n
	}
}

func overallPercentAtLeast(n int) CheckFunc {
	return func(_ progress.Snapshot, _ *catalog.Catalog, overallPercent int) bool {
		return overallPercent >= n
	}
}

func streakAtLeast(n int) CheckFunc {
	return func(s progress.Snapshot, _ *catalog.Catalog, _ int) bool {
		return s.Streak >= n
	}
}
