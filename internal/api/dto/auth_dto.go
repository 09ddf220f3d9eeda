package dto

// LoginRequest payload for POST /login. Fields stay untyped so that a
// well-formed body with non-string values is a credential mismatch, not a
// malformed request.
type LoginRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

// Credentials returns both fields when they are strings.
func (r LoginRequest) Credentials() (username, password string, ok bool) {
	username, uok := r.Username.(string)
	password, pok := r.Password.(string)
	return username, password, uok && pok
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse is returned by the protected endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}
