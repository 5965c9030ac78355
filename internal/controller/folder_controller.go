package controller

import (
	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFolderController interface {
	RegisterRoutes(r fiber.Router, gate fiber.Handler, viewGate fiber.Handler)
	Dashboard(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type folderController struct {
	service service.IFolderService
}

func NewFolderController(service service.IFolderService) IFolderController {
	return &folderController{service: service}
}

func (c *folderController) RegisterRoutes(r fiber.Router, gate fiber.Handler, viewGate fiber.Handler) {
	r.Get("/dashboard", viewGate, c.Dashboard)
	r.Post("/create_folder", viewGate, c.Create)
	r.Delete("/delete_folder/:folder_id", gate, c.Delete)
}

func (c *folderController) Dashboard(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	folders := c.service.GetAll(ctx.Context(), userId)

	return ctx.Render("dashboard", fiber.Map{
		"Folders": folders,
	})
}

func (c *folderController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateFolderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.Create(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (c *folderController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	idParam := ctx.Params("folder_id")
	id, _ := uuid.Parse(idParam)

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete folder", nil))
}
