package entity

// Account is the credential record behind the identity boundary. The chat
// profile (User) is a separate row created lazily on first send.
type Account struct {
	BaseEntity
	Email    string `json:"email" gorm:"unique;type:varchar(100)"`
	Password string `json:"-" gorm:"type:varchar(255)"`
	PhotoURL string `json:"photoURL,omitempty" gorm:"type:text"`
}
