package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	organizationRepo "ongkit/database/repository/organization"
	userRepo "ongkit/database/repository/user"
	"ongkit/models"
	"ongkit/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type CreateOrgRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// AuthResponse is returned from register and login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	OrgID string `json:"orgId,omitempty"`
	Role  string `json:"role,omitempty"`
}

// AccountService manages dashboard accounts and organization membership.
type AccountService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeToken(userID string) error
	CreateOrganization(userID string, req CreateOrgRequest) (*models.Organization, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Users userRepo.UserRepository
	Orgs  organizationRepo.OrganizationRepository
}

func (s *DefaultAccountService) Register(req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.Users.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *DefaultAccountService) Authenticate(email, password string) (*AuthResponse, error) {
	user, err := s.Users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(user)
}

// issueToken signs a JWT and stores its hash so the session can be revoked
// server-side.
func (s *DefaultAccountService) issueToken(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Users.UpdateWithDocument(user.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, err
	}
	utils.CacheSessionTokenHash(user.ID, tokenHash, tokenTTL)

	return &AuthResponse{
		ID:    user.ID,
		Token: token,
		Email: user.Email,
		Name:  user.Name,
		OrgID: user.OrgID,
		Role:  user.Role,
	}, nil
}

func (s *DefaultAccountService) RevokeToken(userID string) error {
	if err := s.Users.UpdateWithDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return err
	}
	utils.DropSessionTokenHash(userID)
	return nil
}

func (s *DefaultAccountService) CreateOrganization(userID string, req CreateOrgRequest) (*models.Organization, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.OrgID != "" {
		return nil, fmt.Errorf("account already belongs to an organization")
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if !utils.ValidSlug(slug) {
		return nil, fmt.Errorf("slug %q must contain only lowercase letters, digits and hyphens", slug)
	}
	if _, err := s.Orgs.GetBySlug(slug); err == nil {
		return nil, fmt.Errorf("slug %q is already in use", slug)
	}

	now := time.Now()
	org := &models.Organization{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Slug:    slug,
		OwnerID: userID,
		Members: []models.Member{{UserID: userID, Role: "owner", AddedAt: now}},
		Subscription: models.Subscription{
			Plan:   models.PlanBasic,
			Status: models.SubscriptionActive,
		},
		Payments:  models.PaymentSettings{Currency: "ron"},
		Language:  "ro",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Orgs.Create(org); err != nil {
		return nil, err
	}
	if err := s.Users.UpdateWithDocument(userID, bson.M{"orgId": org.ID, "role": "owner"}); err != nil {
		return nil, err
	}
	return org, nil
}
