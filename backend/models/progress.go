package models

import "time"

// CourseProgress holds the completed lesson and module id sets for one
// course. Ids are unique within each set; insertion order is preserved but
// carries no meaning.
type CourseProgress struct {
	CompletedLessons []string `json:"completedLessons"`
	CompletedModules []string `json:"completedModules"`
}

// QuizScore is the latest attempt for one quiz. Retakes overwrite it.
type QuizScore struct {
	Score      int       `json:"score"` // 0-100
	IsPerfect  bool      `json:"isPerfect"`
	IsFirstTry bool      `json:"isFirstTry"`
	Date       time.Time `json:"date"`
}

// Statistics are running counters, incremented on every qualifying call and
// never recomputed from the underlying sets.
type Statistics struct {
	TotalLessonsCompleted int `json:"totalLessonsCompleted"`
	TotalCoursesCompleted int `json:"totalCoursesCompleted"`
	TotalQuizzesPassed    int `json:"totalQuizzesPassed"`
	TotalLabsCompleted    int `json:"totalLabsCompleted"`
}

// EarnedBadge records a permanently unlocked badge.
type EarnedBadge struct {
	ID         string    `json:"id"`
	EarnedDate time.Time `json:"earnedDate"`
}

type CourseOverview struct {
	CourseID  string `json:"course_id"`
	Title     string `json:"title"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
}

type ProgressOverview struct {
	OverallProgress  int              `json:"overall_progress"`
	CoursesCompleted int              `json:"courses_completed"`
	Streak           int              `json:"streak"`
	Statistics       Statistics       `json:"statistics"`
	Courses          []CourseOverview `json:"courses"`
}
