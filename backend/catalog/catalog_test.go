package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	assert.Len(t, cat.Courses, 3)
	assert.NotNil(t, cat.CourseByID("ml-basics"))
	assert.NotNil(t, cat.CourseByID("deep-learning"))
	assert.NotNil(t, cat.CourseByID("nlp"))
	assert.Nil(t, cat.CourseByID("unknown"))

	assert.Equal(t, 4, TotalLessons(cat.CourseByID("ml-basics")))
	assert.Equal(t, 2, TotalLessons(cat.CourseByID("deep-learning")))
	assert.Equal(t, 1, TotalLessons(cat.CourseByID("nlp")))
	assert.Equal(t, 7, cat.TotalLessonsAll())
}

func TestQuizAndLabLookup(t *testing.T) {
	cat := Default()

	quiz := cat.QuizByID("ml-basics", "quiz-1")
	assert.NotNil(t, quiz)
	assert.Len(t, quiz.Questions, 3)
	assert.Nil(t, cat.QuizByID("ml-basics", "quiz-9"))
	assert.Nil(t, cat.QuizByID("unknown", "quiz-1"))

	assert.NotNil(t, cat.LabByID("nlp", "lab-1"))
	assert.Nil(t, cat.LabByID("nlp", "lab-9"))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{"courses":[{"id":"go-101","title":"Go Basics","modules":[{"id":"m1","lessons":[{"id":"l1"},{"id":"l2"}]}]}]}`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cat, err := Load(path)
	assert.NoError(t, err)
	assert.Len(t, cat.Courses, 1)
	assert.Equal(t, 2, TotalLessons(cat.CourseByID("go-101")))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	assert.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
