package cart

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jjp1114/studio-store-backend/internal/product"
)

const SessionCookie = "cart_session"

// Handler exposes the cart over HTTP. Carts are anonymous and keyed by a
// session cookie, so all routes are public.
type Handler struct {
	store    *Store
	products product.ServiceInterface
}

func NewHandler(store *Store, products product.ServiceInterface) *Handler {
	return &Handler{store: store, products: products}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:id<[0-9]+>", h.updateQuantity)
	app.Delete("/api/v1/cart/items/:id<[0-9]+>", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
	app.Post("/api/v1/cart/toggle", h.toggleVisibility)
	app.Post("/api/v1/cart/promo", h.applyPromo)
	app.Delete("/api/v1/cart/promo", h.removePromo)
}

// sessionID returns the cart session from the cookie, minting one when the
// browser shows up without it.
func (h *Handler) sessionID(c *fiber.Ctx) string {
	if sid := c.Cookies(SessionCookie); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return sid
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.store.Get(c.Context(), h.sessionID(c)))
}

type addItemRequest struct {
	ProductID int `json:"productID"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productID"})
	}

	p, err := h.products.GetByID(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	return c.JSON(h.store.AddItem(c.Context(), h.sessionID(c), p))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// quantity <= 0 removes the line, same as DELETE
	return c.JSON(h.store.UpdateQuantity(c.Context(), h.sessionID(c), id, payload.Quantity))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	return c.JSON(h.store.RemoveItem(c.Context(), h.sessionID(c), id))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	return c.JSON(h.store.Clear(c.Context(), h.sessionID(c)))
}

func (h *Handler) toggleVisibility(c *fiber.Ctx) error {
	return c.JSON(h.store.ToggleVisibility(c.Context(), h.sessionID(c)))
}

type applyPromoRequest struct {
	Code string `json:"code"`
}

func (h *Handler) applyPromo(c *fiber.Ctx) error {
	payload := new(applyPromoRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	st, applied := h.store.ApplyPromoCode(c.Context(), h.sessionID(c), payload.Code)
	if !applied {
		// one message for both unknown codes and unmet minimums
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"applied": false,
			"message": "invalid code or conditions not met",
		})
	}
	return c.JSON(fiber.Map{"applied": true, "cart": st})
}

func (h *Handler) removePromo(c *fiber.Ctx) error {
	return c.JSON(h.store.RemovePromoCode(c.Context(), h.sessionID(c)))
}
