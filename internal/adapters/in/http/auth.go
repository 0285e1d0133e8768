package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// principalKey is the echo context key under which the authenticated
// principal is stored for downstream handlers.
const principalKey = "principal"

var errInvalidToken = errors.New("invalid or expired token")

// Principal identifies the staff member a request is acting as.
type Principal struct {
	StaffID string
	Name    string
	Role    string
}

type staffClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies the signed tokens staff authenticate with.
// Tokens are HMAC-signed and self-contained, verification does not touch
// the database.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer signing with the given secret.
// Tokens expire after ttl.
func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token naming the staff member. It returns the token and the
// instant it expires.
func (t TokenIssuer) Issue(principal Principal) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(t.ttl)

	claims := staffClaims{
		Name: principal.Name,
		Role: principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.StaffID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Verify parses the token and returns the principal it names.
func (t TokenIssuer) Verify(raw string) (Principal, error) {
	parsed, err := jwt.ParseWithClaims(raw, &staffClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Principal{}, errInvalidToken
	}

	claims, ok := parsed.Claims.(*staffClaims)
	if !ok || claims.Subject == "" || claims.Role == "" {
		return Principal{}, errInvalidToken
	}

	return Principal{StaffID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}

// Login handles POST /auth/login - verifies staff credentials and issues a
// token. Unknown logins and wrong passwords get the same answer so the
// endpoint cannot be used to probe for accounts.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	query, err := queries.NewGetStaffByLoginQuery(request.Login)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.queryHandlers.GetStaffByLogin.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "invalid credentials"})
		}
		return respondError(ctx, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(request.Password)) != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "invalid credentials"})
	}

	if !account.IsActive {
		return ctx.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "account is deactivated"})
	}

	principal := Principal{StaffID: account.ID.String(), Name: account.Name, Role: account.Role}

	token, expiresAt, err := s.tokens.Issue(principal)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		StaffID:   principal.StaffID,
		Name:      principal.Name,
		Role:      principal.Role,
	})
}

// requireStaff admits any request carrying a valid staff token.
func (s *Server) requireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		principal, err := s.authenticate(ctx)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: err.Error()})
		}

		ctx.Set(principalKey, principal)
		return next(ctx)
	}
}

// requireManager admits only requests acting as a manager.
func (s *Server) requireManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		principal, err := s.authenticate(ctx)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: err.Error()})
		}

		if !staff.Role(principal.Role).IsManager() {
			return ctx.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "manager role required"})
		}

		ctx.Set(principalKey, principal)
		return next(ctx)
	}
}

func (s *Server) authenticate(ctx echo.Context) (Principal, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return Principal{}, errors.New("missing authorization header")
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return Principal{}, errors.New("authorization header must use the Bearer scheme")
	}

	return s.tokens.Verify(strings.TrimSpace(token))
}
