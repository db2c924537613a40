package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/achalbajpai/proactively-backend/models"
)

// Claims carries the principal's identity and role inside the session token.
// Nothing else is part of the token contract.
type Claims struct {
	UserID   uint            `json:"id"`
	UserType models.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(userID uint, userType models.UserType) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type jwtService struct {
	secret string
	expiry time.Duration
}

func NewJWTService(secret string, expiry time.Duration) JWTService {
	return &jwtService{secret: secret, expiry: expiry}
}

func (s *jwtService) GenerateToken(userID uint, userType models.UserType) (string, error) {
	claims := Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
