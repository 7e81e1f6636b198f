package service

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/google/uuid"
)

// AuthService owns the staff session lifecycle: a session is created on sign
// in and removed, together with its cart, on sign out.
type AuthService struct {
	api      AuthAPI
	sessions SessionStore
	carts    CartStore
	now      func() time.Time
}

func NewAuthService(api AuthAPI, sessions SessionStore, carts CartStore) *AuthService {
	return &AuthService{api: api, sessions: sessions, carts: carts, now: time.Now}
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	creds, err := credentials(email, password, "")
	if err != nil {
		return nil, err
	}
	emp, err := s.api.SignIn(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, *emp)
}

func (s *AuthService) SignUp(ctx context.Context, email, password string, role domain.Role) (*domain.Session, error) {
	if role == "" {
		role = domain.RoleCashier
	}
	if role != domain.RoleAdmin && role != domain.RoleCashier && role != domain.RoleCustomer {
		return nil, domain.Validationf("unknown role %q", role)
	}
	creds, err := credentials(email, password, role)
	if err != nil {
		return nil, err
	}
	emp, err := s.api.SignUp(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, *emp)
}

func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		log.Printf("[pos-svc] drop cart for session %s: %v", sessionID, err)
	}
	return nil
}

func (s *AuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.NotFoundf("session not found")
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, domain.NotFoundf("session not found")
	}
	return session, nil
}

func (s *AuthService) Employees(ctx context.Context, session *domain.Session) ([]domain.Employee, error) {
	if err := requireStaff(session, "view employees"); err != nil {
		return nil, err
	}
	return s.api.ListEmployees(ctx)
}

func (s *AuthService) open(ctx context.Context, emp domain.Employee) (*domain.Session, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		Employee:  emp,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	log.Printf("[pos-svc] session opened employee=%s role=%s", emp.ID, emp.Role)
	return session, nil
}

func credentials(email, password string, role domain.Role) (domain.Credentials, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Credentials{}, domain.Validationf("Please fill in all fields")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Credentials{}, domain.Validationf("Please enter a valid email address")
	}
	return domain.Credentials{Email: email, Password: password, Role: role}, nil
}
