package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenIssuer mints the signed bearer tokens returned by login. Tokens are
// stateless: validity is determined entirely by signature, issuer, audience
// and expiry at verification time. There is no revocation list.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue signs a token for the user. Claims: sub (username), jti (random),
// uid, role, iss, aud, iat, exp = iat + TTL.
func (ti *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"jti":  uuid.NewString(),
		"uid":  user.ID,
		"role": user.Role,
		"iss":  ti.issuer,
		"aud":  ti.audience,
		"iat":  now.Unix(),
		"exp":  now.Add(ti.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(ti.secret)
}
