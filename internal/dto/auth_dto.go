package dto

import "time"

type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type LoginResponse struct {
	Token     string
	ExpiresAt time.Time
}
