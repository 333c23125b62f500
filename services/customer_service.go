package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/database"
	"github.com/yeremiapane/food-ordering-app/metrics"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repository"
	"github.com/yeremiapane/food-ordering-app/utils"
)

// SessionTTL is how long an access token stays usable after login.
const SessionTTL = 8 * time.Hour

type PasswordHasher interface {
	Encrypt(password string) (salt string, hash string, err error)
	Matches(password, salt, hash string) bool
}

type TokenIssuer interface {
	Issue(customerUUID string, issuedAt, expiresAt time.Time) (string, error)
	Parse(token string) (*utils.CustomClaims, error)
}

// SessionCloser is told when a session ends so that long-lived connections
// opened with it are dropped.
type SessionCloser interface {
	CloseSession(accessToken string)
}

type SignupInput struct {
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string
	Password      string
}

// CustomerService owns customer registration and the login session lifecycle.
type CustomerService struct {
	customers repository.CustomerRepository
	sessions  repository.SessionRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
	closer    SessionCloser
	log       *logrus.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewCustomerService(repos *repository.Repositories, hasher PasswordHasher, tokens TokenIssuer, log *logrus.Logger, m *metrics.Metrics) *CustomerService {
	return &CustomerService{
		customers: repos.Customers,
		sessions:  repos.Sessions,
		hasher:    hasher,
		tokens:    tokens,
		log:       log,
		metrics:   m,
		now:       time.Now,
	}
}

// WithSessionCloser registers who must hear about logouts.
func (s *CustomerService) WithSessionCloser(closer SessionCloser) *CustomerService {
	s.closer = closer
	return s
}

// WithClock replaces the time source. Used by tests to move past session expiry.
func (s *CustomerService) WithClock(now func() time.Time) *CustomerService {
	s.now = now
	return s
}

// Signup validates the input and registers a new customer. A taken contact
// number is reported before any other validation error. Emails are compared
// and stored lower-cased.
func (s *CustomerService) Signup(ctx context.Context, in SignupInput) (*models.Customer, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	_, err := s.customers.FindByContactNumber(ctx, in.ContactNumber)
	switch {
	case err == nil:
		return nil, ErrDuplicateContact
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("lookup contact number: %w", err)
	}

	if utils.IsBlank(in.FirstName, in.Email, in.ContactNumber, in.Password) {
		return nil, ErrMissingField
	}
	if !utils.IsValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if !utils.IsValidContactNumber(in.ContactNumber) {
		return nil, ErrInvalidContact
	}
	if !utils.IsStrongPassword(in.Password) {
		return nil, ErrWeakPassword
	}

	_, err = s.customers.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrDuplicateEmail
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	salt, hash, err := s.hasher.Encrypt(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customer := &models.Customer{
		UUID:          uuid.NewString(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Password:      hash,
		Salt:          salt,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		// Concurrent signups race past the lookups above; the unique index decides.
		if database.IsDuplicateKeyErr(err) {
			if database.DuplicateKeyMentions(err, "email") {
				return nil, ErrDuplicateEmail
			}
			return nil, ErrDuplicateContact
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.metrics.RecordSignup()
	s.log.WithField("customer_id", customer.UUID).Info("Customer registered")
	return customer, nil
}

// Authenticate checks the credentials and opens a new session.
func (s *CustomerService) Authenticate(ctx context.Context, contactNumber, password string) (*models.CustomerAuth, error) {
	customer, err := s.customers.FindByContactNumber(ctx, contactNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.metrics.RecordLogin(metrics.LoginUnknownContact)
			return nil, ErrUnknownContact
		}
		return nil, fmt.Errorf("lookup contact number: %w", err)
	}

	if !s.hasher.Matches(password, customer.Salt, customer.Password) {
		s.metrics.RecordLogin(metrics.LoginBadCredentials)
		s.log.WithField("customer_id", customer.UUID).Warn("Login rejected: bad credentials")
		return nil, ErrBadCredentials
	}

	now := s.now()
	expiresAt := now.Add(SessionTTL)
	token, err := s.tokens.Issue(customer.UUID, now, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	session := &models.CustomerAuth{
		UUID:        uuid.NewString(),
		CustomerID:  customer.ID,
		AccessToken: token,
		LoginAt:     now,
		ExpiresAt:   expiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Customer = *customer

	s.metrics.RecordLogin(metrics.LoginSuccess)
	s.log.WithField("customer_id", customer.UUID).Info("Customer logged in")
	return session, nil
}

// ResolveSession returns the customer owning an active access token.
func (s *CustomerService) ResolveSession(ctx context.Context, accessToken string) (*models.Customer, error) {
	_, customer, err := s.activeSession(ctx, accessToken)
	return customer, err
}

// ActiveSession is ResolveSession for callers that also need the session,
// e.g. to know when it expires.
func (s *CustomerService) ActiveSession(ctx context.Context, accessToken string) (*models.CustomerAuth, error) {
	session, customer, err := s.activeSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	session.Customer = *customer
	return session, nil
}

// Logout closes the session. A closed session never authorizes again.
func (s *CustomerService) Logout(ctx context.Context, accessToken string) (*models.CustomerAuth, error) {
	session, customer, err := s.activeSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	logoutAt := s.now()
	session.LogoutAt = &logoutAt
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("close session: %w", err)
	}
	session.Customer = *customer
	if s.closer != nil {
		s.closer.CloseSession(accessToken)
	}

	s.metrics.RecordLogout()
	s.log.WithField("customer_id", customer.UUID).Info("Customer logged out")
	return session, nil
}

func (s *CustomerService) activeSession(ctx context.Context, accessToken string) (*models.CustomerAuth, *models.Customer, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, nil, ErrNotLoggedIn
	}
	// Tokens we never signed cannot have a session row.
	claims, err := s.tokens.Parse(accessToken)
	if err != nil {
		return nil, nil, ErrNotLoggedIn
	}

	session, err := s.sessions.FindByAccessToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotLoggedIn
		}
		return nil, nil, fmt.Errorf("lookup session: %w", err)
	}

	if session.IsLoggedOut() {
		return nil, nil, ErrLoggedOut
	}
	if session.IsExpired(s.now()) {
		return nil, nil, ErrSessionExpired
	}

	customer, err := s.customers.FindByID(ctx, session.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotLoggedIn
		}
		return nil, nil, fmt.Errorf("load customer: %w", err)
	}
	if claims.CustomerUUID != customer.UUID {
		return nil, nil, ErrNotLoggedIn
	}
	return session, customer, nil
}

// UpdateProfile changes the customer's names. Nothing else is touched.
func (s *CustomerService) UpdateProfile(ctx context.Context, customer *models.Customer, firstName, lastName string) (*models.Customer, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, ErrEmptyFirstName
	}

	updated := *customer
	updated.FirstName = firstName
	updated.LastName = lastName
	if err := s.customers.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.WithField("customer_id", updated.UUID).Info("Customer profile updated")
	return &updated, nil
}

// ChangePassword re-salts and re-hashes the password once the old one is confirmed.
func (s *CustomerService) ChangePassword(ctx context.Context, customer *models.Customer, oldPassword, newPassword string) (*models.Customer, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, ErrEmptyPasswordField
	}
	if !utils.IsStrongPassword(newPassword) {
		return nil, ErrWeakNewPassword
	}

	if !s.hasher.Matches(oldPassword, customer.Salt, customer.Password) {
		return nil, ErrWrongOldPassword
	}

	salt, hash, err := s.hasher.Encrypt(newPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	updated := *customer
	updated.Salt = salt
	updated.Password = hash
	if err := s.customers.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.WithField("customer_id", updated.UUID).Info("Customer password changed")
	return &updated, nil
}
