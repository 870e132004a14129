package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"live-chat-app/config/common"
	"live-chat-app/entity"
)

// CurrentUser is the identity carried by a verified token: the stable email
// identifier plus the profile photo captured at registration.
type CurrentUser struct {
	Email    string
	PhotoURL string
}

type JWT struct {
	config *common.Config
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

func (j *JWT) GenerateToken(account *entity.Account) (string, error) {
	secretKey := j.config.GetJwtConfig()

	claims := jwt.MapClaims{
		"email":     account.Email,
		"photo_url": account.PhotoURL,
		"aud":       "live-chat-app",
		"iss":       "live-chat-app",
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Hour * 12).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secretKey)
}

func (j *JWT) VerifyJwtToken(token string) (jwt.MapClaims, error) {
	secretKey := j.config.GetJwtConfig()

	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := tokenParse.Claims.(jwt.MapClaims); ok && tokenParse.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

// GetCurrentUser resolves the {identifier, photoURL} pair from a token.
func (j *JWT) GetCurrentUser(token string) (CurrentUser, error) {
	claims, err := j.VerifyJwtToken(token)
	if err != nil {
		return CurrentUser{}, err
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return CurrentUser{}, jwt.ErrInvalidKey
	}

	photoURL, _ := claims["photo_url"].(string)
	return CurrentUser{Email: email, PhotoURL: photoURL}, nil
}
