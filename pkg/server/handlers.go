package server

import (
	"FitHub/handler"
)

type Handlers struct {
	Auth       *handler.Auth
	User       *handler.User
	Exercise   *handler.Exercise
	Engagement *handler.Engagement
}
