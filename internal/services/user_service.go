package services

import (
	"errors"
	"strings"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/auth"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/dtos"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/store"
)

// ErrInvalidCredentials is returned when email, password, or the
// optional role hint do not line up with a registered account. The
// message never says which check failed.
var ErrInvalidCredentials = errors.New("incorrect email or password")

type UserService struct {
	Users *store.UserStore
}

// NewUserService creates the service with its account registry.
func NewUserService(users *store.UserStore) *UserService {
	return &UserService{Users: users}
}

// RegisterJobSeeker creates a job seeker account.
func (s *UserService) RegisterJobSeeker(req *dtos.RegisterJobSeekerRequest) (models.User, error) {
	return s.register(models.User{
		Email:  req.Email,
		Name:   req.Name,
		Role:   models.RoleJobSeeker,
		Resume: req.Resume,
	}, req.Password)
}

// RegisterEmployer creates an employer account.
func (s *UserService) RegisterEmployer(req *dtos.RegisterEmployerRequest) (models.User, error) {
	return s.register(models.User{
		Email:       req.Email,
		Name:        req.Name,
		Role:        models.RoleEmployer,
		CompanyName: req.CompanyName,
	}, req.Password)
}

func (s *UserService) register(u models.User, password string) (models.User, error) {
	u.Email = normalizeEmail(u.Email)
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = hash
	return s.Users.Create(u)
}

// Authenticate checks the credentials and returns the matching account.
// A non-empty roleHint must additionally match the account's role.
func (s *UserService) Authenticate(email, password string, roleHint models.Role) (models.User, error) {
	user, err := s.Users.GetByEmail(normalizeEmail(email))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return models.User{}, ErrInvalidCredentials
	}
	if roleHint != "" && user.Role != roleHint {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
