package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"podkeeper/internal/model"
	"podkeeper/pkg/apierror"
)

const bcryptCost = 12

// dummyHash is compared against when a login names an unknown user, so
// the request costs a bcrypt verification either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("podkeeper-dummy-password"), bcryptCost)

// UserStore is the persistence surface AuthService needs.
type UserStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username string, email string) (bool, error)
	Create(ctx context.Context, u model.User) error
}

// AuthService is both the credential store and the session issuer:
// it registers and authenticates users, and mints and verifies the
// signed access tokens protected routes require.
type AuthService struct {
	users     UserStore
	jwtSecret []byte
	tokenTTL  time.Duration

	// now is swapped out in tests to pin token expiry checks.
	now func() time.Time
}

func NewAuthService(users UserStore, jwtSecret string, tokenTTL time.Duration) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	role := strings.ToLower(strings.TrimSpace(req.Role))

	if username == "" || email == "" || req.Password == "" || fullName == "" {
		return model.User{}, apierror.BadRequest("username, email, password and full_name are required", "")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.User{}, apierror.BadRequest("invalid email address", email)
	}
	if role == "" {
		role = model.RoleWorker
	}
	if !model.ValidRole(role) {
		return model.User{}, apierror.BadRequest("invalid role", role)
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return model.User{}, err
	}
	if exists {
		return model.User{}, model.ErrDuplicateIdentity
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

// Login verifies the credentials and issues an access token. Unknown
// username and wrong password both come back as ErrInvalidCredentials
// so the endpoint cannot be used to enumerate usernames.
func (s *AuthService) Login(ctx context.Context, username string, password string) (model.LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, model.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return model.LoginResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.LoginResult{}, model.ErrInvalidCredentials
	}

	if !user.IsActive {
		return model.LoginResult{}, model.ErrInactiveAccount
	}

	token, err := s.issueToken(user)
	if err != nil {
		return model.LoginResult{}, err
	}

	return model.LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) issueToken(user model.User) (string, error) {
	now := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies the signature and expiry of a bearer token.
// There is no revocation list; expiry is the only way a token dies.
func (s *AuthService) ValidateToken(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apierror.Unauthorized("invalid token signing method")
			}
			return s.jwtSecret, nil
		},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, model.ErrUnauthenticated
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrUnauthenticated
	}

	claims := &model.AuthClaims{}
	claims.UserID, _ = claimsMap["sub"].(string)
	claims.Username, _ = claimsMap["username"].(string)

	if claims.UserID == "" {
		return nil, model.ErrUnauthenticated
	}

	return claims, nil
}
