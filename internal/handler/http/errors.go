package http

// Client-facing response messages. Login failure is deliberately uniform:
// the same body covers unknown identifier and wrong password.
const (
	msgLoginSuccess  = "LOGIN_SUCCESS"
	msgSignupSuccess = "SIGNUP_SUCCESS"
	msgLogoutSuccess = "LOGOUT_SUCCESS"

	msgIncorrectCredentials = "Incorrect email/user or password"
	msgIdentifierTaken      = "Username or email already registered"

	// refresh rejection reasons, one per decode failure kind
	msgTokenExpired       = "Token Expired"
	msgInvalidAccessToken = "Invalid Access Token"
	msgCannotValidate     = "Could not validate credentials"

	msgProviderError      = "External identity provider is unavailable"
	msgProfileIncomplete  = "External profile is missing required fields"
	msgInvalidRequestBody = "Invalid JSON was passed"
)
