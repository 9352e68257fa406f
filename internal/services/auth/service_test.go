package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/mocks"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

// CreateAccount tests

func (s *ServiceSuite) TestCreateAccountSucceeds() {
	session, err := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.NotEmpty(session.UserID)
	s.Equal("Alice", session.User.DisplayName)
	s.Equal("alice@example.com", session.User.Email)
}

func (s *ServiceSuite) TestCreateAccountPersistsUserAndCredentials() {
	session, _ := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	user, err := s.storage.GetUser(s.ctx, session.UserID)
	s.Require().NoError(err)
	s.Equal("Alice", user.DisplayName)

	creds, err := s.storage.GetCredentialsByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(session.UserID, creds.UserID)
	s.NotEqual("hunter22", creds.PasswordHash)
}

func (s *ServiceSuite) TestCreateAccountNormalizesEmail() {
	_, err := s.service.CreateAccount(s.ctx, "  Alice@Example.COM ", "hunter22", "Alice")
	s.Require().NoError(err)

	session, err := s.service.SignIn(s.ctx, "alice@example.com", "hunter22")
	s.Require().NoError(err)
	s.Equal("alice@example.com", session.User.Email)
}

func (s *ServiceSuite) TestCreateAccountRejectsDuplicateEmail() {
	_, err := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")
	s.Require().NoError(err)

	_, err = s.service.CreateAccount(s.ctx, "alice@example.com", "other", "Imposter")
	s.ErrorIs(err, ErrEmailExists)
}

// SignIn tests

func (s *ServiceSuite) TestSignInSucceeds() {
	created, _ := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	session, err := s.service.SignIn(s.ctx, "alice@example.com", "hunter22")
	s.Require().NoError(err)
	s.Equal(created.UserID, session.UserID)
	s.NotEqual(created.Token, session.Token)
}

func (s *ServiceSuite) TestSignInWrongPassword() {
	_, _ = s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	_, err := s.service.SignIn(s.ctx, "alice@example.com", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestSignInUnknownEmail() {
	_, err := s.service.SignIn(s.ctx, "nobody@example.com", "hunter22")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestSignInUpdatesLastActive() {
	_, _ = s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	s.clock.Advance(time.Hour)
	session, _ := s.service.SignIn(s.ctx, "alice@example.com", "hunter22")

	user, _ := s.storage.GetUser(s.ctx, session.UserID)
	s.Equal(s.clock.Now(), user.LastActive)
}

// Session tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	session, _ := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	validated, err := s.service.ValidateSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(session.UserID, validated.UserID)
}

func (s *ServiceSuite) TestValidateSessionUnknownToken() {
	_, err := s.service.ValidateSession(s.ctx, "sess_nope")
	s.ErrorIs(err, ErrNotAuthenticated)
}

func (s *ServiceSuite) TestValidateSessionExpired() {
	session, _ := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	s.clock.Advance(25 * time.Hour)
	_, err := s.service.ValidateSession(s.ctx, session.Token)
	s.ErrorIs(err, ErrNotAuthenticated)
}

func (s *ServiceSuite) TestValidateSessionSeesFreshProfile() {
	session, _ := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	name := "Queen Alice"
	_, err := s.service.UpdateProfile(s.ctx, session.UserID, ProfileUpdate{DisplayName: &name})
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal("Queen Alice", validated.User.DisplayName)
}

func (s *ServiceSuite) TestSignOutInvalidatesSession() {
	session, _ := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	s.service.SignOut(session.Token)

	_, err := s.service.ValidateSession(s.ctx, session.Token)
	s.ErrorIs(err, ErrNotAuthenticated)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	expired, _ := s.service.CreateAccount(s.ctx, "old@example.com", "hunter22", "Old")
	s.clock.Advance(25 * time.Hour)
	fresh, _ := s.service.CreateAccount(s.ctx, "new@example.com", "hunter22", "New")

	s.service.CleanExpiredSessions()

	_, err := s.service.ValidateSession(s.ctx, expired.Token)
	s.ErrorIs(err, ErrNotAuthenticated)
	_, err = s.service.ValidateSession(s.ctx, fresh.Token)
	s.NoError(err)
}

// Profile tests

func (s *ServiceSuite) TestGetProfile() {
	session, _ := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	user, err := s.service.GetProfile(s.ctx, session.UserID)
	s.Require().NoError(err)
	s.Equal("Alice", user.DisplayName)
	s.Equal(model.UserStats{}, user.Stats)
}

func (s *ServiceSuite) TestUpdateProfilePartial() {
	session, _ := s.service.CreateAccount(s.ctx, "alice@example.com", "hunter22", "Alice")

	updated, err := s.service.UpdateProfile(s.ctx, session.UserID, ProfileUpdate{})
	s.Require().NoError(err)
	s.Equal("Alice", updated.DisplayName)

	name := "Alicia"
	updated, err = s.service.UpdateProfile(s.ctx, session.UserID, ProfileUpdate{DisplayName: &name})
	s.Require().NoError(err)
	s.Equal("Alicia", updated.DisplayName)
	s.Equal("alice@example.com", updated.Email)
}

func (s *ServiceSuite) TestUpdateProfileUnknownUser() {
	_, err := s.service.UpdateProfile(s.ctx, "u_missing", ProfileUpdate{})
	s.ErrorIs(err, model.ErrUserNotFound)
}
