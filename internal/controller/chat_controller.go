package controller

import (
	"olyph-ai-be/internal/dto"
	"olyph-ai-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
}

type chatController struct {
	service  service.IChatService
	validate *validator.Validate
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("/ask", c.Ask)
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid request body",
		})
	}
	if err := c.validate.Struct(&req); err != nil {
		// Blank input is still answered with the fixed message rather
		// than an error, matching the service contract.
		return ctx.JSON(fiber.Map{
			"success": true,
			"code":    200,
			"data":    dto.AskResponse{Reply: c.service.Respond(ctx.Context(), "")},
		})
	}

	reply := c.service.Respond(ctx.Context(), req.Message)
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"data":    dto.AskResponse{Reply: reply},
	})
}
