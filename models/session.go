package models

// Session is the authenticated identity the sync core works on behalf of.
// It is produced by the authentication transport, which is outside of this
// module; the core only reads the user id and attaches the access token to
// remote calls.
type Session struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

// IsAuthenticated reports whether the session carries a user identity.
func (s Session) IsAuthenticated() bool {
	return s.UserID != ""
}
