package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

const tokenTTL = 24 * time.Hour

// AuthService signs dashboard users in. Both credential and Google
// sign-in resolve against the admin_users collection; Google accounts
// must already exist there (allowlist, no self-signup).
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.AdminUser, error)
	LoginWithGoogle(ctx context.Context, rawIDToken string) (string, *models.AdminUser, error)
	Me(ctx context.Context, userID string) (*models.AdminUser, error)
	EnsureBootstrapAdmin(ctx context.Context) error
}

// googleVerifier validates a Google ID token and returns the email it
// asserts. Split out so tests can stub the network call.
type googleVerifier func(ctx context.Context, rawIDToken string) (string, error)

type authService struct {
	users        mongorepo.AdminUserRepository
	secret       []byte
	issuer       string
	verifyGoogle googleVerifier
}

func NewAuthService(users mongorepo.AdminUserRepository) AuthService {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return &authService{
		users:  users,
		secret: []byte(os.Getenv("JWT_SECRET")),
		issuer: os.Getenv("JWT_ISSUER"),
		verifyGoogle: func(ctx context.Context, raw string) (string, error) {
			payload, err := idtoken.Validate(ctx, raw, clientID)
			if err != nil {
				return "", err
			}
			email, _ := payload.Claims["email"].(string)
			return email, nil
		},
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	const op = "AuthService.Login"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return "", nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	tok, err := s.issueToken(u)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return tok, u, nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, rawIDToken string) (string, *models.AdminUser, error) {
	const op = "AuthService.LoginWithGoogle"

	if rawIDToken == "" {
		return "", nil, utils.E(utils.CodeInvalidArgument, op, "id_token is required", nil)
	}

	email, err := s.verifyGoogle(ctx, rawIDToken)
	if err != nil {
		return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid google token", err)
	}
	if email == "" {
		return "", nil, utils.E(utils.CodeUnauthorized, op, "google token has no email", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.E(utils.CodeForbidden, op, "account is not allowed", nil)
		}
		return "", nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	tok, err := s.issueToken(u)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return tok, u, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*models.AdminUser, error) {
	const op = "AuthService.Me"

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	return u, nil
}

// EnsureBootstrapAdmin creates the dashboard account named by
// ADMIN_EMAIL/ADMIN_PASSWORD if it does not exist yet. Called once at
// startup; a deployment with the variables unset simply skips it.
func (s *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	const op = "AuthService.EnsureBootstrapAdmin"

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeInternal, op, "failed to check bootstrap admin", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.AdminUser{Email: email, PasswordHash: hash, Role: "admin"}
	if err := s.users.Create(ctx, u); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create bootstrap admin", err)
	}
	return nil
}

func (s *authService) issueToken(u *models.AdminUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID.Hex(),
		"role": u.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	if s.issuer != "" {
		claims["iss"] = s.issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
