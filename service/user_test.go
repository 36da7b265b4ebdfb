package service

import (
	"testing"

	"FitHub/dao"
	"FitHub/pkg/encrypt"
	"FitHub/pkg/errs"
	"FitHub/types"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := &UserService{UserDAO: dao.NewUserDAO(db)}

	view, err := svc.Register(testCtx, &types.RegisterRequest{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	require.NotZero(t, view.ID)
	require.Equal(t, "alice", view.Username)

	// password is stored hashed, never verbatim
	stored, err := svc.UserDAO.FindByUsername(testCtx, "alice")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", stored.Password)
	require.True(t, encrypt.VerifyPassword(stored.Password, "hunter2"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := &UserService{UserDAO: dao.NewUserDAO(db)}

	_, err := svc.Register(testCtx, &types.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(testCtx, &types.RegisterRequest{Username: "alice", Password: "pw"})
	require.True(t, errs.IsKind(err, errs.KindConflict))
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := &UserService{UserDAO: dao.NewUserDAO(db)}

	_, err := svc.Register(testCtx, &types.RegisterRequest{Username: "", Password: "pw"})
	require.True(t, errs.IsKind(err, errs.KindValidation))
	_, err = svc.Register(testCtx, &types.RegisterRequest{Username: "alice", Password: ""})
	require.True(t, errs.IsKind(err, errs.KindValidation))
}

func TestFindByUsername(t *testing.T) {
	db := newTestDB(t)
	svc := &UserService{UserDAO: dao.NewUserDAO(db)}
	seedUser(t, db, "alice")

	view, err := svc.FindByUsername(testCtx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", view.Username)

	_, err = svc.FindByUsername(testCtx, "nobody")
	require.True(t, errs.IsKind(err, errs.KindNotFound))
}
