// Package catalog holds the immutable course catalog the platform serves.
// The catalog is supplied at startup (built-in content or a JSON file) and
// is never mutated afterwards; all progress state lives elsewhere.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"mlacademy/backend/models"
)

type Catalog struct {
	Courses []models.Course `json:"courses"`
}

// Load reads a catalog from a JSON file of the form {"courses": [...]}.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &cat, nil
}

// CourseByID returns the course with the given id, or nil.
func (c *Catalog) CourseByID(id string) *models.Course {
	for i := range c.Courses {
		if c.Courses[i].ID == id {
			return &c.Courses[i]
		}
	}
	return nil
}

// QuizByID returns the quiz within a course, or nil.
func (c *Catalog) QuizByID(courseID, quizID string) *models.Quiz {
	course := c.CourseByID(courseID)
	if course == nil {
		return nil
	}
	for i := range course.Quizzes {
		if course.Quizzes[i].ID == quizID {
			return &course.Quizzes[i]
		}
	}
	return nil
}

// LabByID returns the lab within a course, or nil.
func (c *Catalog) LabByID(courseID, labID string) *models.Lab {
	course := c.CourseByID(courseID)
	if course == nil {
		return nil
	}
	for i := range course.Labs {
		if course.Labs[i].ID == labID {
			return &course.Labs[i]
		}
	}
	return nil
}

// TotalLessons counts the lessons across all modules of one course.
func TotalLessons(course *models.Course) int {
	if course == nil {
		return 0
	}
	total := 0
	for _, module := range course.Modules {
		total += len(module.Lessons)
	}
	return total
}

// TotalLessonsAll counts the lessons across the whole catalog.
func (c *Catalog) TotalLessonsAll() int {
	total := 0
	for i := range c.Courses {
		total += TotalLessons(&c.Courses[i])
	}
	return total
}
