package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller of the current request. A nil
// *Identity means the request is unauthenticated.
type Identity struct {
	UserID int64
	Email  string
}

type JWTService struct {
	secretKey     []byte
	tokenLifespan time.Duration
}

type CustomClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func NewJWTService(secretKey string, tokenLifespan time.Duration) *JWTService {
	return &JWTService{
		secretKey:     []byte(secretKey),
		tokenLifespan: tokenLifespan,
	}
}

// Issue signs a token embedding the caller's id and email, expiring
// tokenLifespan from now.
func (s *JWTService) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		identity.UserID,
		identity.Email,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifespan)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", identity.UserID),
			Issuer:    "blogspace-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("cannot sign token: %w", err)
	}

	return signedString, nil
}

func (s *JWTService) parse(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature algorithm: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("error when parsing token claims")
}

// DecodeHeader turns a raw Authorization header value into a caller identity.
// It fails open: a missing header, wrong scheme, bad signature or expired
// token all yield nil, which downstream treats as "unauthenticated". It never
// returns an error because verification failure is not an error condition
// for the request as a whole.
func (s *JWTService) DecodeHeader(rawHeader string) *Identity {
	if rawHeader == "" {
		return nil
	}

	tokenString := strings.TrimPrefix(rawHeader, "Bearer ")
	if tokenString == rawHeader {
		return nil
	}

	claims, err := s.parse(tokenString)
	if err != nil {
		return nil
	}

	return &Identity{UserID: claims.UserID, Email: claims.Email}
}
