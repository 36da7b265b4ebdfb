package service

import (
	"testing"

	"FitHub/models"
)

func TestCanAccess(t *testing.T) {
	const owner, stranger = int64(1), int64(2)

	public := &models.Exercise{ID: 10, OwnerID: owner, IsPublic: true}
	private := &models.Exercise{ID: 11, OwnerID: owner, IsPublic: false}

	cases := []struct {
		name     string
		exercise *models.Exercise
		caller   int64
		action   Action
		want     bool
	}{
		{"public read by stranger", public, stranger, ActionRead, true},
		{"public modify by stranger", public, stranger, ActionModify, true},
		{"public delete by stranger", public, stranger, ActionDelete, true},
		{"public read by owner", public, owner, ActionRead, true},
		{"private read by owner", private, owner, ActionRead, true},
		{"private modify by owner", private, owner, ActionModify, true},
		{"private delete by owner", private, owner, ActionDelete, true},
		{"private read by stranger", private, stranger, ActionRead, false},
		{"private modify by stranger", private, stranger, ActionModify, false},
		{"private delete by stranger", private, stranger, ActionDelete, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAccess(tc.exercise, tc.caller, tc.action); got != tc.want {
				t.Fatalf("CanAccess(%v, %d, %d) = %v, want %v", tc.exercise.ID, tc.caller, tc.action, got, tc.want)
			}
		})
	}
}
