package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"homestock/internal/http/handlers"
	"homestock/internal/repos"
)

func newPageApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	deps := handlers.NewDeps(db)
	if err := deps.Snap.Reload(); err != nil {
		t.Fatal(err)
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Get("/", deps.Pages.Home)
	app.Post("/items", deps.Pages.Save)
	app.Post("/items/:id", deps.Pages.SaveEdit)
	app.Post("/items/:id/delete", deps.Pages.Remove)
	app.Post("/items/:id/increase", deps.Pages.Increase)
	app.Post("/items/:id/decrease", deps.Pages.Decrease)
	return app
}

func formReq(method, path, form string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestHomeEmptyStates(t *testing.T) {
	app := newPageApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if s := body(t, resp); !strings.Contains(s, "No items yet") {
		t.Fatalf("empty full list should show guidance, got: %.200s", s)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/?tab=tobuy", nil))
	if err != nil {
		t.Fatal(err)
	}
	if s := body(t, resp); !strings.Contains(s, "🎉") {
		t.Fatalf("empty shopping list should celebrate, got: %.200s", s)
	}
}

func TestFormCreateRendersItem(t *testing.T) {
	app := newPageApp(t)

	resp, err := app.Test(formReq("POST", "/items", "name=Milk&category=refrigerator&quantity=2&minQuantity=3&unit=L"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("want redirect after save, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	s := body(t, resp)
	if !strings.Contains(s, "Milk") || !strings.Contains(s, "2/3") {
		t.Fatalf("created item not rendered: %.300s", s)
	}
	// 2 < 3, so the item is low stock and shows on the shopping list too.
	resp, _ = app.Test(httptest.NewRequest("GET", "/?tab=tobuy", nil))
	if s := body(t, resp); !strings.Contains(s, "Milk") {
		t.Fatal("low-stock item missing from shopping list")
	}
}

func TestFormEmptyNameIsRejectedQuietly(t *testing.T) {
	app := newPageApp(t)

	resp, err := app.Test(formReq("POST", "/items", "name=++&category=daily"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("want redirect, got %d", resp.StatusCode)
	}
	resp, _ = app.Test(httptest.NewRequest("GET", "/", nil))
	if s := body(t, resp); !strings.Contains(s, "No items yet") {
		t.Fatal("empty-name form post should not create a record")
	}
}

func TestFormIncreaseDecrease(t *testing.T) {
	app := newPageApp(t)

	if resp, _ := app.Test(formReq("POST", "/items", "name=Eggs&category=refrigerator&quantity=0&minQuantity=6&unit=pcs")); resp.StatusCode != http.StatusSeeOther {
		t.Fatal("create form failed")
	}

	// Find the generated id on the page.
	resp, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	s := body(t, resp)
	i := strings.Index(s, "/items/item-")
	if i < 0 {
		t.Fatalf("item form action missing: %.300s", s)
	}
	rest := s[i+len("/items/"):]
	id := rest[:strings.IndexAny(rest, "/\"")]

	if resp, _ := app.Test(formReq("POST", "/items/"+id+"/increase", "tab=all")); resp.StatusCode != http.StatusSeeOther {
		t.Fatal("increase failed")
	}
	resp, _ = app.Test(httptest.NewRequest("GET", "/", nil))
	if s := body(t, resp); !strings.Contains(s, "1/6") {
		t.Fatalf("increase not reflected: %.300s", s)
	}

	if resp, _ := app.Test(formReq("POST", "/items/"+id+"/decrease", "tab=all")); resp.StatusCode != http.StatusSeeOther {
		t.Fatal("decrease failed")
	}
	resp, _ = app.Test(httptest.NewRequest("GET", "/", nil))
	if s := body(t, resp); !strings.Contains(s, "0/6") {
		t.Fatalf("decrease not reflected: %.300s", s)
	}
}

func TestFormDeleteRemovesItem(t *testing.T) {
	app := newPageApp(t)

	if resp, _ := app.Test(formReq("POST", "/items", "name=Soap&category=daily&quantity=1&minQuantity=1&unit=bottle")); resp.StatusCode != http.StatusSeeOther {
		t.Fatal("create form failed")
	}
	resp, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	s := body(t, resp)
	i := strings.Index(s, "/items/item-")
	if i < 0 {
		t.Fatal("item id not found on page")
	}
	rest := s[i+len("/items/"):]
	id := rest[:strings.IndexAny(rest, "/\"")]

	if resp, _ := app.Test(formReq("POST", "/items/"+id+"/delete", "")); resp.StatusCode != http.StatusSeeOther {
		t.Fatal("delete form failed")
	}
	resp, _ = app.Test(httptest.NewRequest("GET", "/", nil))
	if s := body(t, resp); strings.Contains(s, "Soap") {
		t.Fatal("deleted item still rendered")
	}
}
