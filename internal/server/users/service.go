package users

import (
	"context"
	"errors"
	"fmt"

	"postboard/internal/common"
	"postboard/internal/server/auth"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

type Service struct {
	repo        Repository
	credentials *auth.CredentialStore
	tokens      *auth.TokenService
}

func NewService(repo Repository, credentials *auth.CredentialStore, tokens *auth.TokenService) *Service {
	return &Service{
		repo:        repo,
		credentials: credentials,
		tokens:      tokens,
	}
}

// Register creates a new account. Usernames are unique and case-sensitive.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {

	if len(username) < minUsernameLength {
		return nil, fmt.Errorf("%w: username too short", common.ErrorValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password too short", common.ErrorValidation)
	}

	hash, err := s.credentials.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		UserName:     username,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed session token.
// Unknown usernames and wrong passwords both yield
// common.ErrorInvalidLoginPassword; the unknown-user path still burns a
// hash comparison so the two are not distinguishable by latency either.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.credentials.CheckDummy(password)
			return "", common.ErrorInvalidLoginPassword
		}
		return "", common.ErrorInternal
	}

	if !s.credentials.Check(password, user.PasswordHash) {
		return "", common.ErrorInvalidLoginPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// ChangePassword re-hashes the stored credential after verifying the old
// password. This is the only way an account's hash changes.
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {

	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password too short", common.ErrorValidation)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	if !s.credentials.Check(oldPassword, user.PasswordHash) {
		return common.ErrorInvalidLoginPassword
	}

	hash, err := s.credentials.Hash(newPassword)
	if err != nil {
		return common.ErrorInternal
	}

	return s.repo.UpdatePasswordHash(ctx, userID, hash)
}

// GetByID returns the account with the given ID.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// ResolveSubject implements auth.SubjectResolver: a token subject is only
// good if the account still exists.
func (s *Service) ResolveSubject(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.UserName, nil
}
