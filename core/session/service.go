package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/educatesobreia/backend/core"
	"github.com/educatesobreia/backend/core/lead"
)

var errTokenSigningFailed = errors.New("signing session token failed")

// Claims represents the session claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Keyword string `json:"keyword,omitempty"`
}

type Service struct {
	conf *core.Config
}

func NewService(conf *core.Config) *Service {
	return &Service{conf: conf}
}

// Claims builds the token claims for a freshly registered lead.
func (svc *Service) Claims(ld lead.Lead) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    svc.conf.AppName,
			Subject:   ld.ID,
			Audience:  "Academia",
			ExpiresAt: now.Add(svc.conf.SessionExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:    ld.FullName,
		Email:   ld.Email,
		Keyword: ld.Keyword,
	}
}

// GenerateToken generates a signed JWT token string representing the Claims.
func (svc *Service) GenerateToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(svc.conf.SecretKey))
	if err != nil {
		return "", errTokenSigningFailed
	}
	return ss, nil
}

// Verify parses a previously-issued token. An invalid, expired or absent
// token yields the Anonymous session value rather than an error.
func (svc *Service) Verify(tokenStr string) Session {
	if tokenStr == "" {
		return Session{}
	}
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(svc.conf.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return Session{}
	}
	return FromClaims(claims)
}

// FromClaims converts verified claims to the Registered session value.
func FromClaims(claims *Claims) Session {
	return Session{
		State:   Registered,
		LeadID:  claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		Keyword: claims.Keyword,
	}
}
