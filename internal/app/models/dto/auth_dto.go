package dto

import "github.com/motorlab/apexhub/internal/app/models"

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required" example:"apexfan42"`
	Email     string `json:"email" binding:"required" example:"user@example.com"`
	Password  string `json:"password" binding:"required" example:"s3cretpass"`
	FirstName string `json:"first_name" example:"Lando"`
	LastName  string `json:"last_name" example:"Norris"`
}

// LoginRequest is the payload for credential login. Identifier accepts a
// username or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" example:"apexfan42"`
	Password   string `json:"password" binding:"required" example:"s3cretpass"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"Bearer"`
	ExpiresIn   int          `json:"expires_in" example:"3600"`
	User        *models.User `json:"user"`
}
