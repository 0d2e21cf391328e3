package order

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jjp1114/studio-store-backend/internal/cart"
	"github.com/jjp1114/studio-store-backend/internal/events"
	"github.com/jjp1114/studio-store-backend/internal/license"
	"github.com/jjp1114/studio-store-backend/internal/user"
)

// Handler turns the session cart into orders. It owns the checkout
// orchestration: submit, issue licenses, publish the event, clear the cart.
type Handler struct {
	service   *Service
	carts     *cart.Store
	licenses  license.ServiceInterface
	publisher *events.Publisher
	log       zerolog.Logger
}

func NewHandler(service *Service, carts *cart.Store, licenses license.ServiceInterface, publisher *events.Publisher, log zerolog.Logger) *Handler {
	return &Handler{service: service, carts: carts, licenses: licenses, publisher: publisher, log: log}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.createOrder)
	app.Get("/api/v1/orders", h.getOrders)
}

type createOrderRequest struct {
	Billing BillingAddress `json:"billingAddress"`
}

type createOrderResponse struct {
	Order    Order             `json:"order"`
	Licenses []license.License `json:"licenses"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sid := c.Cookies(cart.SessionCookie)
	if sid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	}
	st := h.carts.Get(c.Context(), sid)
	if len(st.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	}

	items := make([]Item, 0, len(st.Lines))
	issueItems := make([]license.IssueItem, 0, len(st.Lines))
	for _, l := range st.Lines {
		items = append(items, Item{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			UnitPrice:   l.Product.Price,
			Quantity:    l.Quantity,
		})
		issueItems = append(issueItems, license.IssueItem{
			ProductID:    l.Product.ID,
			ProductName:  l.Product.Name,
			Quantity:     l.Quantity,
			Activations:  l.Product.Activations,
			Version:      l.Product.Version,
			LicenseTerms: l.Product.LicenseTerms,
		})
	}
	promoCode := ""
	if st.Promo != nil {
		promoCode = st.Promo.Code
	}

	created, err := h.service.Submit(userID, items, promoCode, payload.Billing)
	if err != nil {
		switch err {
		case ErrEmptyCart, ErrInvalidBilling:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	licenses, err := h.licenses.IssueForOrder(created.OrderID, userID, issueItems)
	if err != nil {
		// the order exists; report it even when license issuance lags
		h.log.Error().Err(err).Int("order", created.OrderID).Msg("license issuance failed")
		licenses = []license.License{}
	}

	evt := events.OrderCreated{
		OrderID:   created.OrderID,
		UserID:    userID,
		Total:     created.Total.String(),
		Currency:  created.Currency,
		PromoCode: created.PromoCode,
		Timestamp: time.Now().UTC(),
	}
	for _, item := range created.Items {
		evt.Items = append(evt.Items, events.OrderItemEvent{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		})
	}
	if err := h.publisher.PublishOrderCreated(c.Context(), evt); err != nil {
		h.log.Warn().Err(err).Int("order", created.OrderID).Msg("order event publish failed")
	}

	h.carts.Clear(c.Context(), sid)

	return c.Status(fiber.StatusCreated).JSON(createOrderResponse{Order: created, Licenses: licenses})
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}
