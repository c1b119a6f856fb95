package routes

import (
	"github.com/gofiber/fiber/v2"

	"mlacademy/backend/catalog"
	"mlacademy/backend/controllers"
	"mlacademy/backend/progress"
)

func SetupRoutes(app *fiber.App, cat *catalog.Catalog, registry *progress.Registry) {
	// Courses routes
	coursesController := controllers.NewCoursesController(cat, registry)
	courses := app.Group("/api/courses")
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Post("/:id/lessons/:lessonId/complete", coursesController.CompleteLesson)
	courses.Get("/:id/certificate", coursesController.GetCertificate)

	// Quizzes routes
	quizzesController := controllers.NewQuizzesController(cat, registry)
	courses.Get("/:id/quizzes/:quizId", quizzesController.GetQuiz)
	courses.Post("/:id/quizzes/:quizId/score", quizzesController.SubmitScore)
	courses.Get("/:id/quizzes/:quizId/score", quizzesController.GetScore)

	// Labs routes
	labsController := controllers.NewLabsController(cat, registry)
	courses.Get("/:id/labs", labsController.GetLabs)
	courses.Post("/:id/labs/:labId/complete", labsController.CompleteLab)

	// Progress routes
	progressController := controllers.NewProgressController(cat, registry)
	app.Get("/api/progress/overview", progressController.GetOverview)
	app.Get("/api/progress/statistics", progressController.GetStatistics)
	app.Get("/api/progress/streak", progressController.GetStreak)

	// Badges routes
	badgesController := controllers.NewBadgesController(registry)
	app.Get("/api/badges", badgesController.GetBadges)
	app.Get("/api/badges/earned", badgesController.GetEarnedBadges)
	app.Get("/api/badges/category/:category", badgesController.GetBadgesByCategory)
}
