package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mlacademy/backend/badges"
	"mlacademy/backend/catalog"
	"mlacademy/backend/progress"
	"mlacademy/backend/utils"
)

type QuizzesController struct {
	Catalog  *catalog.Catalog
	Registry *progress.Registry
}

func NewQuizzesController(cat *catalog.Catalog, registry *progress.Registry) *QuizzesController {
	return &QuizzesController{Catalog: cat, Registry: registry}
}

func (qc *QuizzesController) GetQuiz(c *fiber.Ctx) error {
	quiz := qc.Catalog.QuizByID(c.Params("id"), c.Params("quizId"))
	if quiz == nil {
		return utils.NotFound(c, "Quiz not found")
	}
	return c.JSON(quiz)
}

// SubmitScore godoc
// @Summary Submit a quiz score
// @Description Stores the client-graded attempt, overwriting any previous one, and re-evaluates badges
// @Tags quizzes
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id}/quizzes/{quizId}/score [post]
func (qc *QuizzesController) SubmitScore(c *fiber.Ctx) error {
	courseID := c.Params("id")
	quiz := qc.Catalog.QuizByID(courseID, c.Params("quizId"))
	if quiz == nil {
		return utils.NotFound(c, "Quiz not found")
	}

	var body struct {
		Score      int  `json:"score"`
		IsPerfect  bool `json:"is_perfect"`
		IsFirstTry bool `json:"is_first_try"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.Score < 0 || body.Score > 100 {
		return utils.BadRequest(c, "Score must be between 0 and 100")
	}

	tracker := profileTracker(c, qc.Registry)
	record := tracker.SaveQuizScore(courseID, quiz.ID, body.Score, body.IsPerfect, body.IsFirstTry)

	aggregator := progress.NewAggregator(tracker)
	overall := aggregator.OverallProgress(qc.Catalog)
	newBadges := badges.NewEngine(tracker).CheckAndUnlock(qc.Catalog, overall)

	return c.JSON(fiber.Map{
		"message":    "Score saved",
		"score":      record,
		"passed":     record.Score >= progress.PassingScore,
		"streak":     tracker.Streak(),
		"new_badges": newBadges,
	})
}

func (qc *QuizzesController) GetScore(c *fiber.Ctx) error {
	courseID := c.Params("id")
	quiz := qc.Catalog.QuizByID(courseID, c.Params("quizId"))
	if quiz == nil {
		return utils.NotFound(c, "Quiz not found")
	}

	record := profileTracker(c, qc.Registry).GetQuizScore(courseID, quiz.ID)
	if record == nil {
		return utils.NotFound(c, "No score recorded for this quiz")
	}
	return c.JSON(record)
}
