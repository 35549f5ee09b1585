package handlers

import (
	"github.com/gofiber/fiber/v2"

	"homestock/internal/domain"
	applog "homestock/internal/log"
	"homestock/internal/services"
	"homestock/internal/validate"
	"homestock/internal/view"
)

type PageHandler struct {
	Items *services.ItemService
	Snap  *view.Snapshot
}

// Group is one category section on the page.
type Group struct {
	Key   string
	Title string
	Items []domain.Item
}

var groupTitles = map[string]string{
	domain.CategoryRefrigerator: "Refrigerator",
	domain.CategoryDaily:        "Daily goods",
	domain.CategoryOther:        "Other",
}

// Home renders the grouped, filtered projection from the snapshot. The
// page never reads the store directly.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	mode := view.ParseMode(c.Query("tab"))
	filtered := view.FilterForView(h.Snap.Items(), mode)
	grouped := view.GroupByCategory(filtered)

	groups := make([]Group, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		groups = append(groups, Group{Key: cat, Title: groupTitles[cat], Items: grouped[cat]})
	}

	data := fiber.Map{
		"Mode":       string(mode),
		"Restock":    mode == view.ModeRestock,
		"Groups":     groups,
		"Categories": domain.Categories,
	}
	if view.AllEmpty(grouped) {
		data["Empty"] = view.EmptyMessage(mode)
	}
	return c.Render("index", data)
}

// Save handles the add-item form post.
func (h *PageHandler) Save(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Warn(c, "form.save.invalid", map[string]any{"field": "name"})
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	category, ok := validate.Category(c.FormValue("category"))
	if !ok {
		applog.Warn(c, "form.save.invalid", map[string]any{"field": "category"})
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	qty := validate.Qty(c.FormValue("quantity"))
	minQty := validate.MinQty(c.FormValue("minQuantity"))

	_, err := h.Items.Create(services.ItemInput{
		Name:        name,
		Category:    category,
		Quantity:    &qty,
		MinQuantity: &minQty,
		Unit:        validate.Unit(c.FormValue("unit")),
	})
	if err != nil {
		applog.Error(c, "form.save", err, nil)
	}
	h.refresh(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// SaveEdit handles the edit form post for an existing item.
func (h *PageHandler) SaveEdit(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Warn(c, "form.edit.invalid", map[string]any{"field": "name"})
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	category, ok := validate.Category(c.FormValue("category"))
	if !ok {
		applog.Warn(c, "form.edit.invalid", map[string]any{"field": "category"})
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	qty := validate.Qty(c.FormValue("quantity"))
	minQty := validate.MinQty(c.FormValue("minQuantity"))

	_, err := h.Items.Update(id, services.ItemInput{
		Name:        name,
		Category:    category,
		Quantity:    &qty,
		MinQuantity: &minQty,
		Unit:        validate.Unit(c.FormValue("unit")),
	})
	if err != nil {
		applog.Error(c, "form.edit", err, map[string]any{"id": id})
	}
	h.refresh(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Remove deletes an item. Confirmation happens in the template, before
// the form ever posts.
func (h *PageHandler) Remove(c *fiber.Ctx) error {
	if id, ok := validate.ID(c.Params("id")); ok {
		if err := h.Items.Delete(id); err != nil {
			applog.Error(c, "form.delete", err, map[string]any{"id": id})
		}
	}
	h.refresh(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) Increase(c *fiber.Ctx) error {
	return h.adjust(c, "form.increase", h.Items.Increment)
}

func (h *PageHandler) Decrease(c *fiber.Ctx) error {
	return h.adjust(c, "form.decrease", h.Items.Decrement)
}

func (h *PageHandler) adjust(c *fiber.Ctx, action string, op func(string) (domain.Item, error)) error {
	if id, ok := validate.ID(c.Params("id")); ok {
		if _, err := op(id); err != nil {
			applog.Error(c, action, err, map[string]any{"id": id})
		}
	}
	h.refresh(c)
	tab := c.FormValue("tab")
	if tab == string(view.ModeRestock) {
		return c.Redirect("/?tab="+tab, fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) refresh(c *fiber.Ctx) {
	if err := h.Snap.Reload(); err != nil {
		applog.Error(c, "snapshot.reload", err, nil)
	}
}
