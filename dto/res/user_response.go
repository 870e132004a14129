package res

// UserResponse carries a chat profile. LastSeen follows the same formatting
// rule as message timestamps: nil until the server has assigned one.
type UserResponse struct {
	Email    string  `json:"email"`
	PhotoURL string  `json:"photoURL,omitempty"`
	LastSeen *string `json:"lastSeen"`
}
