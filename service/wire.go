package service

import (
	"FitHub/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(ExerciseService), "*"),
	wire.Bind(new(IExerciseService), new(*ExerciseService)),

	wire.Struct(new(EngagementService), "*"),
	wire.Bind(new(IEngagementService), new(*EngagementService)),

	wire.Bind(new(TokenStore), new(*cache.TokenCache)),
)
