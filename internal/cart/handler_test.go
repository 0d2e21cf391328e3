package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jjp1114/studio-store-backend/internal/kv"
	"github.com/jjp1114/studio-store-backend/internal/product"
)

func makeCartApp() *fiber.App {
	products := product.NewService(product.NewInMemoryRepository(product.SampleCatalog()))
	store := NewStore(kv.NewMemory(), zerolog.Nop())
	handler := NewHandler(store, products)

	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Cookie", SessionCookie+"=test-session")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, target, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestCartRoutes_AddUpdateRemove(t *testing.T) {
	app := makeCartApp()

	status, body := doJSON(t, app, "GET", "/api/v1/cart", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 for empty cart, got %d", status)
	}
	if !strings.Contains(body, `"lines":[]`) {
		t.Fatalf("expected empty lines, got %s", body)
	}

	status, body = doJSON(t, app, "POST", "/api/v1/cart/items", `{"productID":1}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 adding product, got %d", status)
	}
	if !strings.Contains(body, `"quantity":1`) {
		t.Fatalf("expected quantity 1, got %s", body)
	}

	// second add accumulates
	status, body = doJSON(t, app, "POST", "/api/v1/cart/items", `{"productID":1}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on second add, got %d", status)
	}
	if !strings.Contains(body, `"quantity":2`) {
		t.Fatalf("expected quantity 2, got %s", body)
	}
	if !strings.Contains(body, `"subtotal":"99.98"`) {
		t.Fatalf("expected subtotal 99.98, got %s", body)
	}

	status, body = doJSON(t, app, "PUT", "/api/v1/cart/items/1", `{"quantity":0}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 updating quantity, got %d", status)
	}
	if strings.Contains(body, `"id":1`) {
		t.Fatalf("expected line removed at quantity 0, got %s", body)
	}
}

func TestCartRoutes_UnknownProductRejected(t *testing.T) {
	app := makeCartApp()

	status, _ := doJSON(t, app, "POST", "/api/v1/cart/items", `{"productID":999}`)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", status)
	}
}

func TestCartRoutes_PromoLifecycle(t *testing.T) {
	app := makeCartApp()

	// product 2 costs 199.99, enough for WELCOME20
	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productID":2}`)

	status, body := doJSON(t, app, "POST", "/api/v1/cart/promo", `{"code":"welcome20"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 applying promo, got %d (%s)", status, body)
	}
	if !strings.Contains(body, `"applied":true`) {
		t.Fatalf("expected applied true, got %s", body)
	}

	status, body = doJSON(t, app, "POST", "/api/v1/cart/promo", `{"code":"NOPE"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad code, got %d", status)
	}
	if !strings.Contains(body, `"applied":false`) {
		t.Fatalf("expected applied false, got %s", body)
	}

	// previous promo must survive the failed apply
	_, body = doJSON(t, app, "GET", "/api/v1/cart", "")
	if !strings.Contains(body, `"code":"WELCOME20"`) {
		t.Fatalf("expected WELCOME20 still applied, got %s", body)
	}

	status, body = doJSON(t, app, "DELETE", "/api/v1/cart/promo", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 removing promo, got %d", status)
	}
	if strings.Contains(body, `"code":"WELCOME20"`) {
		t.Fatalf("expected promo removed, got %s", body)
	}
}

func TestCartRoutes_ClearAndToggle(t *testing.T) {
	app := makeCartApp()

	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productID":1}`)

	status, body := doJSON(t, app, "POST", "/api/v1/cart/toggle", "")
	if status != fiber.StatusOK || !strings.Contains(body, `"isOpen":true`) {
		t.Fatalf("expected open cart after toggle, got %d %s", status, body)
	}

	status, body = doJSON(t, app, "DELETE", "/api/v1/cart", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 clearing cart, got %d", status)
	}
	if !strings.Contains(body, `"lines":[]`) {
		t.Fatalf("expected empty cart, got %s", body)
	}
	if !strings.Contains(body, `"isOpen":true`) {
		t.Fatalf("expected visibility untouched by clear, got %s", body)
	}
}

func TestCartRoutes_SessionCookieMinted(t *testing.T) {
	app := makeCartApp()

	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	found := false
	for _, c := range res.Cookies() {
		if c.Name == SessionCookie && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a cart_session cookie to be set")
	}
}
