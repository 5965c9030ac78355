package controller

import (
	"notes-be/internal/dto"
	"notes-be/internal/pkg/apperrors"
	"notes-be/internal/service"
	"notes-be/internal/session"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	ShowLogin(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/login", c.ShowLogin)
	r.Post("/login", c.Login)
	r.Get("/logout", c.Logout)
}

func (c *authController) ShowLogin(ctx *fiber.Ctx) error {
	return ctx.Render("login", fiber.Map{})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Error": "email and password are required",
		})
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		status := fiber.StatusUnauthorized
		message := "invalid email or password"
		if appErr, ok := apperrors.As(err); ok && appErr.Kind == apperrors.KindValidation {
			status = fiber.StatusBadRequest
			message = appErr.Message
		}
		return ctx.Status(status).Render("login", fiber.Map{
			"Error": message,
		})
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    res.Token,
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	// Always succeeds, logged in or not.
	_ = c.service.Logout(ctx.Context(), ctx.Cookies(session.CookieName))

	ctx.ClearCookie(session.CookieName)
	return ctx.Redirect("/login", fiber.StatusFound)
}
