package controller

import (
	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISummarizeController interface {
	RegisterRoutes(r fiber.Router, gate fiber.Handler)
	Summarize(ctx *fiber.Ctx) error
}

type summarizeController struct {
	service service.ISummarizeService
}

func NewSummarizeController(service service.ISummarizeService) ISummarizeController {
	return &summarizeController{service: service}
}

func (c *summarizeController) RegisterRoutes(r fiber.Router, gate fiber.Handler) {
	r.Post("/summarize", gate, c.Summarize)
}

func (c *summarizeController) Summarize(ctx *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Summarize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize note", res))
}
