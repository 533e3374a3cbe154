package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	// Meta data
	Claim interface{} `json:"claim"`

	// Inherit from registered claims
	jwt.RegisteredClaims
}

// GenerateJWTToken signs the claims with the ES256 private key.
func GenerateJWTToken(privateKeydata []byte, claim TokenClaims) (string, error) {
	privateKey, keyErr := jwt.ParseECPrivateKeyFromPEM(privateKeydata)
	if keyErr != nil {
		return "", fmt.Errorf("unable to parse private key: %w", keyErr)
	}

	method := jwt.GetSigningMethod(jwt.SigningMethodES256.Name)

	session, err := jwt.NewWithClaims(method, claim).SignedString(privateKey)
	return session, err
}

// ValidateToken parses and verifies a token against the ES256 public key.
func ValidateToken(keydata []byte, token string) (jwt.MapClaims, error) {
	publicKey, keyErr := jwt.ParseECPublicKeyFromPEM(keydata)
	if keyErr != nil {
		return nil, keyErr
	}

	parsed, parseErr := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if claims, ok := parsed.Claims.(jwt.MapClaims); ok && parsed.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("token claim is not valid")
}
