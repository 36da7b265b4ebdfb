package types

import "time"

type CreateExerciseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty"`
	IsPublic    *bool  `json:"is_public"` // nil means default (public)
	Duration    *int   `json:"duration"`
}

// UpdateExerciseRequest is a partial patch: nil means "leave untouched",
// a non-nil pointer to a zero value means "set to that zero value".
type UpdateExerciseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Difficulty  *int    `json:"difficulty"`
	IsPublic    *bool   `json:"is_public"`
	Duration    *int    `json:"duration"`
}

// ExerciseFilter narrows the visible set; all set fields are ANDed.
// SortBy passes through as a column reference and is not validated against
// the schema; callers must only pass known field names.
type ExerciseFilter struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Difficulty  *int   `form:"difficulty"`
	SortBy      string `form:"sort_by"`
	Order       string `form:"order"` // DESC only when exactly "DESC"
}

// ExerciseView is the single-item projection: deliberately narrower than the
// list item (no difficulty, visibility, duration or ratings).
type ExerciseView struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	OwnerID       int64  `json:"owner_id"`
	FavoriteCount int64  `json:"favorite_count"`
	SaveCount     int64  `json:"save_count"`
}

// ExerciseListItem is a full exercise row annotated with live engagement
// counts derived at read time.
type ExerciseListItem struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Difficulty    int       `json:"difficulty"`
	IsPublic      bool      `json:"is_public"`
	OwnerID       int64     `json:"owner_id"`
	Duration      *int      `json:"duration,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	FavoriteCount int64     `json:"favorite_count"`
	SaveCount     int64     `json:"save_count"`
}

type RateExerciseRequest struct {
	Value int `json:"value"`
}

type EngagementResponse struct {
	Message string `json:"message"`
}
