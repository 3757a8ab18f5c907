package dto

// SignupRequest payload for new accounts.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// SignupResponse returned on account creation.
type SignupResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginRequest payload for JSON login. Username and Email are
// interchangeable; either identifies the account.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the OAuth2-style token envelope.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
