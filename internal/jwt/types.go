package jwt

type Role int

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

type RegisterShopper struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Shopper struct {
	Id           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}
