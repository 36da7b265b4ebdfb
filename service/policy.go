package service

import "FitHub/models"

type Action int

const (
	ActionRead Action = iota + 1
	ActionModify
	ActionDelete
)

// CanAccess decides permit/deny for one action against one exercise row.
// Public exercises are community-editable: any caller may read, modify and
// delete them, not just the owner. Private exercises are owner-only for
// every action. Nothing else influences the decision; callers must pass the
// freshly loaded row since no capability is cached.
func CanAccess(ex *models.Exercise, callerID int64, action Action) bool {
	if ex.IsPublic {
		return true
	}
	return ex.OwnerID == callerID
}
