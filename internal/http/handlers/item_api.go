package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"homestock/internal/domain"
	applog "homestock/internal/log"
	"homestock/internal/services"
	"homestock/internal/validate"
	"homestock/internal/view"
)

type ItemAPIHandler struct {
	Items *services.ItemService
	Snap  *view.Snapshot
}

// List serves the authoritative ordered listing straight from the store.
func (h *ItemAPIHandler) List(c *fiber.Ctx) error {
	items, err := h.Items.List()
	if err != nil {
		return h.fail(c, "items.list", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return c.JSON(items)
}

func (h *ItemAPIHandler) Create(c *fiber.Ctx) error {
	var in services.ItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	// A supplied id must pass the same gate the mutation paths apply,
	// or the item could never be addressed again over the API.
	if in.ID != "" {
		if _, ok := validate.ID(in.ID); !ok {
			applog.Warn(c, "items.create.invalid", map[string]any{"field": "id"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
		}
	}
	it, err := h.Items.Create(in)
	if err != nil {
		return h.fail(c, "items.create", err)
	}
	h.reload(c)
	applog.Info(c, "items.create", map[string]any{"id": it.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func (h *ItemAPIHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}
	var in services.ItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if _, err := h.Items.Update(id, in); err != nil {
		return h.fail(c, "items.update", err)
	}
	h.reload(c)
	return c.JSON(fiber.Map{"success": true})
}

func (h *ItemAPIHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}
	if err := h.Items.Delete(id); err != nil {
		return h.fail(c, "items.delete", err)
	}
	h.reload(c)
	applog.Info(c, "items.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true})
}

func (h *ItemAPIHandler) Increment(c *fiber.Ctx) error {
	return h.step(c, "items.increment", h.Items.Increment)
}

func (h *ItemAPIHandler) Decrement(c *fiber.Ctx) error {
	return h.step(c, "items.decrement", h.Items.Decrement)
}

func (h *ItemAPIHandler) step(c *fiber.Ctx, action string, op func(string) (domain.Item, error)) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}
	it, err := op(id)
	if err != nil {
		return h.fail(c, action, err)
	}
	h.reload(c)
	return c.JSON(it)
}

// reload refreshes the snapshot after a successful mutation. The mutation
// already landed, so a reload failure is logged, not surfaced.
func (h *ItemAPIHandler) reload(c *fiber.Ctx) {
	if err := h.Snap.Reload(); err != nil {
		applog.Error(c, "snapshot.reload", err, nil)
	}
}

func (h *ItemAPIHandler) fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	case errors.Is(err, domain.ErrValidation):
		applog.Warn(c, action+".invalid", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Item already exists"})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
