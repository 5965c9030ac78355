package serverutils

import (
	"notes-be/internal/session"

	"github.com/gofiber/fiber/v2"
)

// RequireSession gates JSON endpoints. A request without a valid session
// gets a bare 401 body; the shape is part of the API contract.
func RequireSession(codec *session.TokenCodec, store session.Store) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, sid, ok := resolveSession(ctx, codec, store)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		ctx.Locals("user_id", userId)
		ctx.Locals("session_id", sid)
		return ctx.Next()
	}
}

// RequireSessionOrRedirect gates view endpoints: browsers get sent to the
// login page instead of a JSON error.
func RequireSessionOrRedirect(codec *session.TokenCodec, store session.Store, loginPath string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, sid, ok := resolveSession(ctx, codec, store)
		if !ok {
			return ctx.Redirect(loginPath, fiber.StatusFound)
		}

		ctx.Locals("user_id", userId)
		ctx.Locals("session_id", sid)
		return ctx.Next()
	}
}

func resolveSession(ctx *fiber.Ctx, codec *session.TokenCodec, store session.Store) (string, string, bool) {
	cookie := ctx.Cookies(session.CookieName)
	if cookie == "" {
		return "", "", false
	}

	sid, err := codec.Parse(cookie)
	if err != nil {
		return "", "", false
	}

	userId, found, err := store.Get(ctx.Context(), sid)
	if err != nil || !found {
		return "", "", false
	}

	return userId.String(), sid, true
}
