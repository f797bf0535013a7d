package services

import (
	"context"
	"errors"

	"github.com/autoops/taskboard/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the registration boundary: 5 characters reject,
// 6 accept.
const MinPasswordLength = 6

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("username, email, and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string, fullName *string) (*models.UserDB, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// TokenIssuer defines an interface for generating signed session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64, username string) (string, error)
}

// WelcomeMailer sends the post-registration welcome message.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, toEmail, toName string) error
}

// AuthService handles registration, login and current-user lookup.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
	mailer WelcomeMailer
	log    *zap.SugaredLogger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer, mailer WelcomeMailer, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		mailer: mailer,
		log:    log,
	}
}

// Register validates the input, stores the user with a bcrypt hash and
// fires the welcome email. The pre-insert duplicate check answers the
// common case; a concurrent duplicate is caught as the unique-constraint
// violation and mapped to the same error.
func (svc *AuthService) Register(ctx context.Context, username, email, password string, fullName *string) (*models.UserDB, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword), fullName)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	// Best effort: a failed welcome email never fails the registration.
	if err := svc.mailer.SendWelcome(ctx, user.Email, user.DisplayName()); err != nil {
		svc.log.Warnw("welcome email error (non-critical)", "email", user.Email, "error", err)
	}

	return user, nil
}

// Login authenticates a user, stamps the last login and issues a token.
// Unknown username and wrong password collapse into one error so callers
// cannot enumerate accounts.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDB, error) {
	if username == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.ID); err != nil {
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// CurrentUser resolves the token's user id to a live account.
func (svc *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// isUniqueViolation reports a PostgreSQL unique-constraint error
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
