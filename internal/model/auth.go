package model

import "github.com/golang-jwt/jwt/v5"

// CoachClaims are JWT claims for coach (staff) authentication
type CoachClaims struct {
	CoachID string `json:"coachId"`
	jwt.RegisteredClaims
}

// SessionClaims are JWT claims scoped to a single diagnosis session
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for coach login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	CoachID string `json:"coachId"`
}
