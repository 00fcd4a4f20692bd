package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ejparker/curdboard-backend/internal/app/model"
	"github.com/ejparker/curdboard-backend/internal/app/repository"
	"github.com/ejparker/curdboard-backend/pkg/logger"
	"github.com/ejparker/curdboard-backend/pkg/util"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoPendingSignup    = errors.New("no pending signup")
	ErrMazeNotCompleted   = errors.New("verification maze not completed")
)

// ValidationError carries a human-readable message for inline display
// on the signup form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AuthService runs the two-phase signup state machine plus login.
// A signup attempt moves NoSession -> PendingSignup -> Verified(User),
// or is abandoned. The pending state is never persisted; it travels in
// the caller's session and is handed back in on Verify.
type AuthService interface {
	Signup(username, password, confirm string) (*util.PendingSignup, error)
	Verify(pending *util.PendingSignup, captchaOK string) (string, error)
	Login(username, password string) (string, error)
}

type authService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Signup validates the form and stages a pending signup. No user record
// is written here; that only happens once the maze is solved.
func (s *authService) Signup(username, password, confirm string) (*util.PendingSignup, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	confirm = strings.TrimSpace(confirm)

	logger.Info("Signup attempt", map[string]interface{}{
		"username": username,
	})

	if username == "" || password == "" {
		return nil, validationErr("Username and password are required.")
	}
	if password != confirm {
		return nil, validationErr("Passwords do not match.")
	}
	if _, exists := s.userRepo.FindByUsername(username); exists {
		logger.Warn("Signup failed: username already taken", map[string]interface{}{
			"username": username,
		})
		return nil, ErrUsernameTaken
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"username": username,
		})
		return nil, err
	}

	logger.Info("Signup staged, awaiting maze verification", map[string]interface{}{
		"username": username,
	})

	return &util.PendingSignup{
		Username:     username,
		PasswordHash: hash,
	}, nil
}

// Verify commits a staged signup once the maze challenge reports
// success. A failed challenge keeps the pending signup alive for
// another attempt; only the caller's session holds it.
func (s *authService) Verify(pending *util.PendingSignup, captchaOK string) (string, error) {
	if pending == nil {
		return "", ErrNoPendingSignup
	}

	if captchaOK != "1" {
		logger.Warn("Maze verification failed, pending signup retained", map[string]interface{}{
			"username": pending.Username,
		})
		return "", ErrMazeNotCompleted
	}

	user := model.User{
		Username:     pending.Username,
		PasswordHash: pending.PasswordHash,
	}
	if err := s.userRepo.Append(user); err != nil {
		logger.Error("Failed to persist verified user", err, map[string]interface{}{
			"username": pending.Username,
		})
		return "", err
	}

	logger.Info("User created after maze verification", map[string]interface{}{
		"username": user.Username,
	})

	return user.Username, nil
}

// Login checks credentials against the user collection. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	logger.Info("Login attempt", map[string]interface{}{
		"username": username,
	})

	user, exists := s.userRepo.FindByUsername(username)
	if !exists || !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid credentials", map[string]interface{}{
			"username": username,
		})
		return "", ErrInvalidCredentials
	}

	logger.Info("Login successful", map[string]interface{}{
		"username": user.Username,
	})

	return user.Username, nil
}
