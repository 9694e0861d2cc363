package handlers

import (
	"errors"

	"homefit/internal/forms"
	"homefit/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WorkoutHandler handles the workout pages.
type WorkoutHandler struct {
	service *services.WorkoutService
	view    *View
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(service *services.WorkoutService, view *View) *WorkoutHandler {
	return &WorkoutHandler{
		service: service,
		view:    view,
	}
}

// RegisterRoutes registers the workout routes, each guarded by auth.
func (h *WorkoutHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/workout/list", auth, h.HandleListWorkouts)
	router.Get("/workouts", auth, h.HandleListWorkouts)
	router.Get("/workout/new", auth, h.HandleNewWorkout)
	router.Post("/workout/new", auth, h.HandleNewWorkout)
	router.Get("/workout/edit/:id", auth, h.HandleEditWorkout)
	router.Post("/workout/edit/:id", auth, h.HandleEditWorkout)
	router.Get("/workout/delete/:id", auth, h.HandleDeleteWorkout)
	router.Get("/workout/:id", auth, h.HandleGetWorkout)
}

// HandleListWorkouts shows every workout.
func (h *WorkoutHandler) HandleListWorkouts(c *fiber.Ctx) error {
	workouts, err := h.service.GetAllWorkouts(c.UserContext())
	if err != nil {
		return err
	}
	return h.view.Render(c, "workouts", fiber.Map{
		"Title":    "Workouts",
		"Workouts": workouts,
	})
}

// HandleGetWorkout shows one workout. An unknown ID ends up as a 500.
func (h *WorkoutHandler) HandleGetWorkout(c *fiber.Ctx) error {
	workout, err := h.service.GetWorkoutByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return h.view.Render(c, "workout", fiber.Map{
		"Title":   "Workout",
		"Workout": workout,
	})
}

// HandleDeleteWorkout removes the workout and goes back to the list.
func (h *WorkoutHandler) HandleDeleteWorkout(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	err = h.service.DeleteWorkout(c.UserContext(), user, c.Params("id"))
	if errors.Is(err, services.ErrNotOwner) {
		h.view.Flash(c, "You can't delete a Workout you don't own.")
	} else if err != nil {
		return err
	}
	return c.Redirect("/workout/list")
}

// HandleNewWorkout shows the blank form on GET and creates the workout on a valid POST.
func (h *WorkoutHandler) HandleNewWorkout(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var form forms.WorkoutForm
	ok, errs, err := forms.ValidateOnSubmit(c, &form)
	if err != nil {
		return err
	}
	if ok {
		workout, err := h.service.CreateWorkout(c.UserContext(), user, form.Fields())
		if err != nil {
			return err
		}
		return c.Redirect("/workout/" + workout.ID)
	}
	return h.view.Render(c, "workoutform", fiber.Map{
		"Title":  "Track a Workout",
		"Action": "/workout/new",
		"Form":   form,
		"Errors": errs,
	})
}

// HandleEditWorkout changes a workout's fields when the ownership policy allows it.
func (h *WorkoutHandler) HandleEditWorkout(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	workout, err := h.service.GetWorkoutForEdit(c.UserContext(), user, c.Params("id"))
	if errors.Is(err, services.ErrNotOwner) {
		h.view.Flash(c, "You can't edit a Workout you don't own.")
		return c.Redirect("/workout/" + workout.ID)
	}
	if err != nil {
		return err
	}

	var form forms.WorkoutForm
	ok, errs, err := forms.ValidateOnSubmit(c, &form)
	if err != nil {
		return err
	}
	if ok {
		if err := h.service.UpdateWorkout(c.UserContext(), user, workout.ID, form.Fields()); err != nil {
			return err
		}
		return c.Redirect("/workout/" + workout.ID)
	}
	return h.view.Render(c, "workoutform", fiber.Map{
		"Title":  "Edit Workout",
		"Action": "/workout/edit/" + workout.ID,
		"Form":   forms.WorkoutFormFrom(workout),
		"Errors": errs,
	})
}
