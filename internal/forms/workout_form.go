package forms

import "homefit/internal/models"

// WorkoutForm is the create/edit form for workouts.
type WorkoutForm struct {
	Excercise string `form:"excercise" validate:"required,notblank"`
	Weight    string `form:"weight" validate:"required,notblank"`
	Sets      string `form:"sets" validate:"required,notblank"`
	Reps      string `form:"reps" validate:"required,notblank"`
}

func WorkoutFormFrom(w *models.Workout) WorkoutForm {
	return WorkoutForm{
		Excercise: w.Excercise,
		Weight:    w.Weight,
		Sets:      w.Sets,
		Reps:      w.Reps,
	}
}

func (f WorkoutForm) Fields() models.WorkoutFields {
	return models.WorkoutFields{
		Excercise: f.Excercise,
		Weight:    f.Weight,
		Sets:      f.Sets,
		Reps:      f.Reps,
	}
}
