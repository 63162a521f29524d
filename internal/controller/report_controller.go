package controller

import (
	"fmt"

	"olyph-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router, protect fiber.Handler)
	Export(ctx *fiber.Ctx) error
}

type reportController struct {
	service service.IReportService
}

func NewReportController(service service.IReportService) IReportController {
	return &reportController{service: service}
}

func (c *reportController) RegisterRoutes(r fiber.Router, protect fiber.Handler) {
	h := r.Group("/report")
	h.Get("/export", protect, c.Export)
}

func (c *reportController) Export(ctx *fiber.Ctx) error {
	data, filename, err := c.service.ExportCSV(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Send(data)
}
