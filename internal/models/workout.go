package models

import "time"

// Workout is a single tracked exercise.
type Workout struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Excercise string    `json:"excercise"`
	Weight    string    `json:"weight"`
	Sets      string    `json:"sets"`
	Reps      string    `json:"reps"`
	Author    string    `json:"author" gorm:"index;type:varchar(36)"` // empty unless author stamping is enabled
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkoutFields is the user-editable subset of a Workout.
type WorkoutFields struct {
	Excercise string
	Weight    string
	Sets      string
	Reps      string
}

func (w *Workout) Fields() WorkoutFields {
	return WorkoutFields{
		Excercise: w.Excercise,
		Weight:    w.Weight,
		Sets:      w.Sets,
		Reps:      w.Reps,
	}
}

func (w *Workout) Apply(f WorkoutFields) {
	w.Excercise = f.Excercise
	w.Weight = f.Weight
	w.Sets = f.Sets
	w.Reps = f.Reps
}
