package services

import "errors"

// ErrNotOwner is returned when a user tries to change a record they did not create.
var ErrNotOwner = errors.New("user does not own this record")

// OwnershipPolicy describes how a record kind ties records to their creator.
// The two kinds intentionally differ, so each carries its own policy.
type OwnershipPolicy struct {
	// StampAuthor records the creating user's ID on new records.
	StampAuthor bool
	// CheckOnEdit restricts editing to the record's author.
	CheckOnEdit bool
	// CheckOnDelete restricts deletion to the record's author.
	CheckOnDelete bool
}

// BedPolicy: beds are owned by their creator for both edit and delete.
var BedPolicy = OwnershipPolicy{StampAuthor: true, CheckOnEdit: true, CheckOnDelete: true}

// WorkoutPolicy never stamps an author yet still checks it on edit, so edits
// are refused for everyone. Deletes are unrestricted.
var WorkoutPolicy = OwnershipPolicy{StampAuthor: false, CheckOnEdit: true, CheckOnDelete: false}

func (p OwnershipPolicy) author(userID string) string {
	if p.StampAuthor {
		return userID
	}
	return ""
}

func (p OwnershipPolicy) mayEdit(userID, author string) bool {
	return !p.CheckOnEdit || userID == author
}

func (p OwnershipPolicy) mayDelete(userID, author string) bool {
	return !p.CheckOnDelete || userID == author
}
