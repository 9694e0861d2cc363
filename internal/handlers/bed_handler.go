package handlers

import (
	"errors"

	"homefit/internal/forms"
	"homefit/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BedHandler handles the bed pages.
type BedHandler struct {
	service *services.BedService
	view    *View
}

// NewBedHandler creates a new BedHandler.
func NewBedHandler(service *services.BedService, view *View) *BedHandler {
	return &BedHandler{
		service: service,
		view:    view,
	}
}

// RegisterRoutes registers the bed routes, each guarded by auth.
func (h *BedHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/bed/list", auth, h.HandleListBeds)
	router.Get("/beds", auth, h.HandleListBeds)
	router.Get("/bed/new", auth, h.HandleNewBed)
	router.Post("/bed/new", auth, h.HandleNewBed)
	router.Get("/bed/edit/:id", auth, h.HandleEditBed)
	router.Post("/bed/edit/:id", auth, h.HandleEditBed)
	router.Get("/bed/delete/:id", auth, h.HandleDeleteBed)
	router.Get("/bed/:id", auth, h.HandleGetBed)
}

// HandleListBeds shows every bed.
func (h *BedHandler) HandleListBeds(c *fiber.Ctx) error {
	return h.renderList(c)
}

func (h *BedHandler) renderList(c *fiber.Ctx) error {
	beds, err := h.service.GetAllBeds(c.UserContext())
	if err != nil {
		return err
	}
	return h.view.Render(c, "beds", fiber.Map{
		"Title": "Beds",
		"Beds":  beds,
	})
}

// HandleGetBed shows one bed. An unknown ID is not handled here and ends up as a 500.
func (h *BedHandler) HandleGetBed(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	bed, err := h.service.GetBedByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return h.view.Render(c, "bed", fiber.Map{
		"Title":   "Bed",
		"Bed":     bed,
		"IsOwner": bed.Author == user.ID,
	})
}

// HandleDeleteBed deletes a bed owned by the caller, then re-renders the list
// in the same response whether or not anything was deleted.
func (h *BedHandler) HandleDeleteBed(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	err = h.service.DeleteBed(c.UserContext(), user, c.Params("id"))
	switch {
	case errors.Is(err, services.ErrNotOwner):
		h.view.Flash(c, "You can't delete a Bed you don't own.")
	case err != nil:
		return err
	default:
		h.view.Flash(c, "The Bed was deleted.")
	}
	return h.renderList(c)
}

// HandleNewBed shows the blank form on GET and creates the bed on a valid POST.
func (h *BedHandler) HandleNewBed(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var form forms.BedForm
	ok, errs, err := forms.ValidateOnSubmit(c, &form)
	if err != nil {
		return err
	}
	if ok {
		bed, err := h.service.CreateBed(c.UserContext(), user, form.Fields())
		if err != nil {
			return err
		}
		return c.Redirect("/bed/" + bed.ID)
	}
	return h.view.Render(c, "bedform", fiber.Map{
		"Title":  "New Bed",
		"Action": "/bed/new",
		"Form":   form,
		"Errors": errs,
	})
}

// HandleEditBed lets the author change a bed's fields.
func (h *BedHandler) HandleEditBed(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	bed, err := h.service.GetBedForEdit(c.UserContext(), user, id)
	if errors.Is(err, services.ErrNotOwner) {
		h.view.Flash(c, "You can't edit a Bed you don't own.")
		return c.Redirect("/bed/" + bed.ID)
	}
	if err != nil {
		return err
	}

	var form forms.BedForm
	ok, errs, err := forms.ValidateOnSubmit(c, &form)
	if err != nil {
		return err
	}
	if ok {
		if err := h.service.UpdateBed(c.UserContext(), user, bed.ID, form.Fields()); err != nil {
			return err
		}
		return c.Redirect("/bed/" + bed.ID)
	}

	// Not submitted or invalid: show the stored values, keeping any errors.
	return h.view.Render(c, "bedform", fiber.Map{
		"Title":  "Edit Bed",
		"Action": "/bed/edit/" + bed.ID,
		"Form":   forms.BedFormFrom(bed),
		"Errors": errs,
	})
}
