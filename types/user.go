package types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
