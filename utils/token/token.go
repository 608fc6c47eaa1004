// Package token signs and verifies the password-reset links. A token
// is an HMAC-signed claim set binding a user id to the email the
// account had when the link was issued, valid for one hour.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TTL is how long a reset link stays valid.
const TTL = 3600 * time.Second

var (
	ErrExpired = errors.New("reset token expired")
	ErrInvalid = errors.New("reset token invalid")
)

type resetClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Signer issues and checks reset tokens with a single HMAC secret.
type Signer struct {
	secret []byte
	now    func() time.Time
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret), now: time.Now}
}

// Issue returns a signed token for the given account.
func (s *Signer) Issue(uid, email string) (string, error) {
	now := s.now()
	claims := resetClaims{
		UID:   uid,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "fail to sign reset token")
	}
	return signed, nil
}

// Verify checks signature and age, returning the bound user id and
// email. Expiry is reported as ErrExpired so the caller can flash a
// distinct message; any other failure collapses to ErrInvalid.
func (s *Signer) Verify(raw string) (uid string, email string, err error) {
	claims := &resetClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrExpired
		}
		return "", "", ErrInvalid
	}
	if claims.UID == "" || claims.Email == "" {
		return "", "", ErrInvalid
	}
	return claims.UID, claims.Email, nil
}
