package model

// User identifies an assignee. Credentials never reach the client; the
// session layer only ever sees these public fields.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
