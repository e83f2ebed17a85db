package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successfully"
	MessageSuccessGetUser  = "success get user"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetUser  = "failed to get user"

	ErrUserNotFound       = errors.New("no user with given id exists")
	ErrEmailAlreadyExists = errors.New("user already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,min=3,max=255,email"`
		Password string `json:"password" validate:"required,min=6,max=50"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,min=3,max=255,email"`
		Password string `json:"password" validate:"required,min=6,max=50"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Token string `json:"token"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	MeResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	OtherUserResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
