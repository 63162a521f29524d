package controller

import (
	"olyph-ai-be/internal/dto"
	"olyph-ai-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ISurveyController interface {
	RegisterRoutes(r fiber.Router, protect fiber.Handler)
	Submit(ctx *fiber.Ctx) error
	Score(ctx *fiber.Ctx) error
	RunBatch(ctx *fiber.Ctx) error
}

type surveyController struct {
	service  service.ISurveyService
	validate *validator.Validate
}

func NewSurveyController(service service.ISurveyService) ISurveyController {
	return &surveyController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *surveyController) RegisterRoutes(r fiber.Router, protect fiber.Handler) {
	h := r.Group("/survey")
	h.Post("/responses", c.Submit)
	h.Post("/score", protect, c.Score)
	h.Post("/run", protect, c.RunBatch)
}

func (c *surveyController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitResponseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid request body",
		})
	}

	if err := c.service.Submit(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Response recorded",
	})
}

func (c *surveyController) Score(ctx *fiber.Ctx) error {
	var req dto.ScoreRowRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid request body",
		})
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	scores := c.service.ScoreRow(ctx.Context(), req.Answers)
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"data":    dto.ScoreRowResponse{Scores: scores},
	})
}

func (c *surveyController) RunBatch(ctx *fiber.Ctx) error {
	summary, err := c.service.RunBatch(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"data":    dto.RunBatchResponse{Summary: summary},
	})
}
