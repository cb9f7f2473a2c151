package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 30 * time.Minute

type ConnectClaims struct {
	jwt.RegisteredClaims
}

type JoinClaims struct {
	jwt.RegisteredClaims

	AppID   string `json:"app_id"`
	Channel string `json:"channel"`
	UserID  string `json:"user_id"`
}

// Generator issues the gateway's own HS256 tokens: chat connect tokens and
// RTC channel join tokens.
type Generator struct {
	secret []byte
	appID  string
}

func New(secret, appID string) *Generator {
	return &Generator{
		secret: []byte(secret),
		appID:  appID,
	}
}

func (g *Generator) GenerateConnectToken(userID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(tokenTTL)

	claims := ConnectClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign connect token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) GenerateJoinToken(userID, channel string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(tokenTTL)

	claims := JoinClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		AppID:   g.appID,
		Channel: channel,
		UserID:  userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign join token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateConnectToken(tokenString string) (*ConnectClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ConnectClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse connect token: %w", err)
	}

	if claims, ok := token.Claims.(*ConnectClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid connect token")
}

func (g *Generator) ValidateJoinToken(tokenString string) (*JoinClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JoinClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse join token: %w", err)
	}

	if claims, ok := token.Claims.(*JoinClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid join token")
}
