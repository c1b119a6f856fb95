package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mlacademy/backend/badges"
	"mlacademy/backend/catalog"
	"mlacademy/backend/progress"
	"mlacademy/backend/utils"
)

type LabsController struct {
	Catalog  *catalog.Catalog
	Registry *progress.Registry
}

func NewLabsController(cat *catalog.Catalog, registry *progress.Registry) *LabsController {
	return &LabsController{Catalog: cat, Registry: registry}
}

func (lc *LabsController) GetLabs(c *fiber.Ctx) error {
	course := lc.Catalog.CourseByID(c.Params("id"))
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	completed := profileTracker(c, lc.Registry).LabCompletion(course.ID)

	result := []fiber.Map{}
	for _, lab := range course.Labs {
		result = append(result, fiber.Map{
			"id":          lab.ID,
			"title":       lab.Title,
			"description": lab.Description,
			"completed":   contains(completed, lab.ID),
		})
	}
	return c.JSON(result)
}

// CompleteLab marks a lab done. No code is executed or verified; labs are
// self-attested, like lessons.
func (lc *LabsController) CompleteLab(c *fiber.Ctx) error {
	courseID := c.Params("id")
	lab := lc.Catalog.LabByID(courseID, c.Params("labId"))
	if lab == nil {
		return utils.NotFound(c, "Lab not found")
	}

	tracker := profileTracker(c, lc.Registry)
	completedLabs := tracker.MarkLabComplete(courseID, lab.ID)

	aggregator := progress.NewAggregator(tracker)
	overall := aggregator.OverallProgress(lc.Catalog)
	newBadges := badges.NewEngine(tracker).CheckAndUnlock(lc.Catalog, overall)

	return c.JSON(fiber.Map{
		"message":        "Lab completed",
		"completed_labs": completedLabs,
		"streak":         tracker.Streak(),
		"new_badges":     newBadges,
	})
}
