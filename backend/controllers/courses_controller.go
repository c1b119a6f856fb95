package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mlacademy/backend/badges"
	"mlacademy/backend/catalog"
	"mlacademy/backend/progress"
)

type CoursesController struct {
	Catalog  *catalog.Catalog
	Registry *progress.Registry
}

func NewCoursesController(cat *catalog.Catalog, registry *progress.Registry) *CoursesController {
	return &CoursesController{Catalog: cat, Registry: registry}
}

func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	tracker := profileTracker(c, cc.Registry)
	aggregator := progress.NewAggregator(tracker)

	result := []fiber.Map{}
	for i := range cc.Catalog.Courses {
		course := &cc.Catalog.Courses[i]
		totalLessons := catalog.TotalLessons(course)
		record := tracker.GetCourseProgress(course.ID)

		result = append(result, fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"instructor":  course.Instructor,
			"duration":    course.Duration,
			"level":       course.Level,
			"thumbnail":   course.Thumbnail,
			"lessons":     totalLessons,
			"completed":   len(record.CompletedLessons),
			"progress":    aggregator.CourseProgress(course.ID, totalLessons),
		})
	}

	return c.JSON(result)
}

func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course := cc.Catalog.CourseByID(c.Params("id"))
	if course == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	tracker := profileTracker(c, cc.Registry)
	aggregator := progress.NewAggregator(tracker)
	record := tracker.GetCourseProgress(course.ID)
	completedLabs := tracker.LabCompletion(course.ID)
	totalLessons := catalog.TotalLessons(course)

	modules := []fiber.Map{}
	for _, module := range course.Modules {
		lessons := []fiber.Map{}
		for _, lesson := range module.Lessons {
			lessons = append(lessons, fiber.Map{
				"id":        lesson.ID,
				"title":     lesson.Title,
				"completed": contains(record.CompletedLessons, lesson.ID),
			})
		}
		modules = append(modules, fiber.Map{
			"id":        module.ID,
			"title":     module.Title,
			"lessons":   lessons,
			"completed": contains(record.CompletedModules, module.ID),
		})
	}

	quizzes := []fiber.Map{}
	for _, quiz := range course.Quizzes {
		quizzes = append(quizzes, fiber.Map{
			"id":        quiz.ID,
			"title":     quiz.Title,
			"questions": len(quiz.Questions),
		})
	}

	labs := []fiber.Map{}
	for _, lab := range course.Labs {
		labs = append(labs, fiber.Map{
			"id":          lab.ID,
			"title":       lab.Title,
			"description": lab.Description,
			"completed":   contains(completedLabs, lab.ID),
		})
	}

	return c.JSON(fiber.Map{
		"id":          course.ID,
		"title":       course.Title,
		"description": course.Description,
		"instructor":  course.Instructor,
		"duration":    course.Duration,
		"level":       course.Level,
		"modules":     modules,
		"quizzes":     quizzes,
		"labs":        labs,
		"progress":    aggregator.CourseProgress(course.ID, totalLessons),
		"completed":   aggregator.IsCourseCompleted(course.ID, totalLessons),
	})
}

// CompleteLesson godoc
// @Summary Mark a lesson complete
// @Description Adds the lesson to the course's completion set, updates the streak and statistics, and re-evaluates badges
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id}/lessons/{lessonId}/complete [post]
func (cc *CoursesController) CompleteLesson(c *fiber.Ctx) error {
	course := cc.Catalog.CourseByID(c.Params("id"))
	if course == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	var body struct {
		ModuleID string `json:"module_id"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	tracker := profileTracker(c, cc.Registry)
	aggregator := progress.NewAggregator(tracker)
	totalLessons := catalog.TotalLessons(course)

	completedBefore := aggregator.IsCourseCompleted(course.ID, totalLessons)
	record := tracker.MarkLessonComplete(course.ID, c.Params("lessonId"), body.ModuleID)
	if !completedBefore && aggregator.IsCourseCompleted(course.ID, totalLessons) {
		tracker.RecordCourseCompleted()
	}

	overall := aggregator.OverallProgress(cc.Catalog)
	newBadges := badges.NewEngine(tracker).CheckAndUnlock(cc.Catalog, overall)

	return c.JSON(fiber.Map{
		"message":          "Lesson completed",
		"progress":         record,
		"course_progress":  aggregator.CourseProgress(course.ID, totalLessons),
		"overall_progress": overall,
		"streak":           tracker.Streak(),
		"new_badges":       newBadges,
	})
}

// GetCertificate reports completion eligibility for a course certificate.
func (cc *CoursesController) GetCertificate(c *fiber.Ctx) error {
	course := cc.Catalog.CourseByID(c.Params("id"))
	if course == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	tracker := profileTracker(c, cc.Registry)
	aggregator := progress.NewAggregator(tracker)
	totalLessons := catalog.TotalLessons(course)
	record := tracker.GetCourseProgress(course.ID)

	return c.JSON(fiber.Map{
		"course_id":         course.ID,
		"title":             course.Title,
		"eligible":          aggregator.IsCourseCompleted(course.ID, totalLessons),
		"total_lessons":     totalLessons,
		"completed_lessons": len(record.CompletedLessons),
	})
}
