package dto

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"maya_r"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpass"`
	College  string `json:"college" binding:"required" example:"IIT Delhi"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"maya_r"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries a freshly minted token pair.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	UserID           int64  `json:"userId" example:"1"`
	Username         string `json:"username" example:"maya_r"`
}
