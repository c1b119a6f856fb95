package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mlacademy/backend/catalog"
	"mlacademy/backend/models"
	"mlacademy/backend/progress"
)

type ProgressController struct {
	Catalog  *catalog.Catalog
	Registry *progress.Registry
}

func NewProgressController(cat *catalog.Catalog, registry *progress.Registry) *ProgressController {
	return &ProgressController{Catalog: cat, Registry: registry}
}

// GetOverview godoc
// @Summary Get progress overview
// @Description Returns overall progress, per-course progress, streak and statistics
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} models.ProgressOverview
// @Router /progress/overview [get]
func (pc *ProgressController) GetOverview(c *fiber.Ctx) error {
	tracker := profileTracker(c, pc.Registry)
	aggregator := progress.NewAggregator(tracker)

	courses := []models.CourseOverview{}
	for i := range pc.Catalog.Courses {
		course := &pc.Catalog.Courses[i]
		totalLessons := catalog.TotalLessons(course)
		courses = append(courses, models.CourseOverview{
			CourseID:  course.ID,
			Title:     course.Title,
			Progress:  aggregator.CourseProgress(course.ID, totalLessons),
			Completed: aggregator.IsCourseCompleted(course.ID, totalLessons),
		})
	}

	return c.JSON(models.ProgressOverview{
		OverallProgress:  aggregator.OverallProgress(pc.Catalog),
		CoursesCompleted: aggregator.CompletedCoursesCount(pc.Catalog),
		Streak:           tracker.Streak(),
		Statistics:       tracker.Statistics(),
		Courses:          courses,
	})
}

// GetStatistics godoc
// @Summary Get statistics counters
// @Tags progress
// @Produce json
// @Success 200 {object} models.Statistics
// @Router /progress/statistics [get]
func (pc *ProgressController) GetStatistics(c *fiber.Ctx) error {
	return c.JSON(profileTracker(c, pc.Registry).Statistics())
}

func (pc *ProgressController) GetStreak(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"streak": profileTracker(c, pc.Registry).Streak(),
	})
}
