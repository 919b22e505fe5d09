package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/spec-kit/gas-delivery/internal/auth"
	"github.com/spec-kit/gas-delivery/internal/domain"
	"github.com/spec-kit/gas-delivery/internal/repository"
	apperrors "github.com/spec-kit/gas-delivery/pkg/util"
)

// AccountService coordinates registration, login and profile flows.
type AccountService struct {
	users    repository.UserRepository
	verifier auth.Verifier
	tokens   *auth.TokenManager

	// regMu serializes the duplicate-contact check with the insert so
	// concurrent registrations cannot both pass the check.
	regMu sync.Mutex
}

// AccountDependencies encapsulates requirements for the account service.
type AccountDependencies struct {
	UserRepo repository.UserRepository
	Verifier auth.Verifier
	// Tokens is optional; when set, register/login responses carry a signed
	// identity token instead of relying on the raw user id as claim.
	Tokens *auth.TokenManager
}

// NewAccountService builds the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	return &AccountService{
		users:    deps.UserRepo,
		verifier: deps.Verifier,
		tokens:   deps.Tokens,
	}
}

// ProfileUpdateInput carries the replaceable profile fields. All four are
// written verbatim: a field the caller omits is overwritten with its zero
// value (full-replace semantics).
type ProfileUpdateInput struct {
	Name       string
	Email      string
	Address    string
	ProfilePic string
}

// Register creates a new customer account. The contact is classified as an
// email when it contains '@', as a mobile number otherwise, and must be
// unique across both fields.
func (s *AccountService) Register(ctx context.Context, name, contact, password string) (*domain.User, string, error) {
	if name == "" || contact == "" || password == "" {
		return nil, "", apperrors.NewValidationError("name, contact, password required", nil)
	}

	stored, err := s.verifier.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Password: stored,
	}
	if strings.Contains(contact, "@") {
		user.Email = contact
	} else {
		user.Mobile = contact
	}

	s.regMu.Lock()
	defer s.regMu.Unlock()

	if _, err := s.users.GetByContact(ctx, contact); err == nil {
		return nil, "", apperrors.NewConflict("contact already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a customer by contact and password.
func (s *AccountService) Login(ctx context.Context, contact, password string) (*domain.User, string, error) {
	if contact == "" || password == "" {
		return nil, "", apperrors.NewValidationError("contact and password required", nil)
	}

	user, err := s.users.GetByContact(ctx, contact)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", err
	}
	if !s.verifier.Verify(user.Password, password) {
		return nil, "", apperrors.NewUnauthorized("invalid credentials")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile returns the user's current record.
func (s *AccountService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile replaces name, email, address and profile picture on the
// user's record. Omitted fields null out; see ProfileUpdateInput.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Address = input.Address
	user.ProfilePic = input.ProfilePic

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

func (s *AccountService) issueToken(userID string) (string, error) {
	if s.tokens == nil {
		return "", nil
	}
	token, _, err := s.tokens.GenerateToken(userID)
	return token, err
}
