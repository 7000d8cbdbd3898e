package credentials

// Credentials is the access/refresh token pair issued by the backend.
// The pair is always replaced atomically on login and refresh, and
// erased atomically on logout.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
