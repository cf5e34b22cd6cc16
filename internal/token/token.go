package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
)

// TokenValidity is fixed at issuance; expiry is the only automatic
// invalidation mechanism, there is no server-side revocation.
const TokenValidity = 7 * 24 * time.Hour

// Codec issues and verifies self-contained HMAC-signed bearer tokens.
// It is a pure function of the signing key and the payload; the key is
// configured once at process start and never regenerated.
type Codec struct {
	key []byte
	now func() time.Time
}

func NewCodec(secret string) *Codec {
	return &Codec{
		key: []byte(secret),
		now: time.Now,
	}
}

// Issue signs a token carrying subject plus the given string claims,
// stamped with issue time and the fixed validity window.
func (c *Codec) Issue(subject string, claims map[string]string) (string, error) {
	now := c.now()

	payload := jwt.MapClaims{
		"sub": subject,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(TokenValidity).Unix(),
	}
	for k, v := range claims {
		payload[k] = v
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := tok.SignedString(c.key)
	if err != nil {
		return "", scheduling.Internal("failed_to_sign_token")
	}
	return signed, nil
}

// VerifySubject verifies signature and expiry and returns the embedded
// subject. Every failure mode collapses into an authentication error;
// nothing here is fatal.
func (c *Codec) VerifySubject(tokenString string) (string, error) {
	claims, err := c.parse(tokenString)
	if err != nil {
		return "", err
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", scheduling.Unauthenticated("invalid_token_subject")
	}
	return subject, nil
}

// VerifyClaims verifies the token and returns its string claims.
func (c *Codec) VerifyClaims(tokenString string) (map[string]string, error) {
	claims, err := c.parse(tokenString)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string)
	for k, v := range claims {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out, nil
}

func (c *Codec) parse(tokenString string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(
		tokenString,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return c.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !tok.Valid {
		return nil, scheduling.Unauthenticated("invalid_token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, scheduling.Unauthenticated("invalid_token_claims")
	}
	return claims, nil
}
