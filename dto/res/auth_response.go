package res

type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// CurrentUserResponse is the identity boundary's current-user accessor shape.
type CurrentUserResponse struct {
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
}
