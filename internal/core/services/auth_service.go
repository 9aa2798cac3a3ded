package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type staffAccount struct {
	user     domain.User
	password string
}

// AuthService matches logins against a static staff list and hands out
// session tokens. Roles gate feature visibility at the handler layer only;
// the ledgers trust that the caller's role check already happened.
type AuthService struct {
	mu       sync.Mutex
	accounts []staffAccount
	sessions map[string]domain.User
}

func NewAuthService() *AuthService {
	accounts := []staffAccount{
		{user: domain.User{ID: uuid.New(), Email: "owner@playground.com", Name: "Owner Admin", Role: domain.RoleOwner}, password: "owner123"},
		{user: domain.User{ID: uuid.New(), Email: "manager@playground.com", Name: "Manager Smith", Role: domain.RoleManager}, password: "manager123"},
		{user: domain.User{ID: uuid.New(), Email: "cashier@playground.com", Name: "Cashier Jones", Role: domain.RoleCashier}, password: "cashier123"},
		{user: domain.User{ID: uuid.New(), Email: "supervisor@playground.com", Name: "Supervisor Brown", Role: domain.RoleSupervisor}, password: "super123"},
	}

	return &AuthService{
		accounts: accounts,
		sessions: make(map[string]domain.User),
	}
}

// Login returns the matched user and a fresh session token.
func (s *AuthService) Login(email, password string) (domain.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.user.Email == email && acc.password == password {
			token := uuid.NewString()
			s.sessions[token] = acc.user
			return acc.user, token, nil
		}
	}

	return domain.User{}, "", ErrInvalidCredentials
}

// Authenticate resolves a session token back to its user.
func (s *AuthService) Authenticate(token string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.sessions[token]
	return user, ok
}

func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}
