package models

// DetailResponse is the generic success body returned by authentication
// endpoints, e.g. {"detail": "LOGIN_SUCCESS"}.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ErrorResponse is the generic failure body returned by authentication
// endpoints. The message is intentionally uniform for credential failures
// so that callers cannot distinguish an unknown identifier from a wrong
// password.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest is the body of POST /login. LoginIdentifier may be either a
// username or an email address.
type LoginRequest struct {
	LoginIdentifier string `json:"login_identifier"`
	Password        string `json:"password"`
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}
