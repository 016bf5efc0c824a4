// services/auth_service.go - login and token issuance
package services

import (
	"errors"
	"time"

	"hackreg/auth"
	"hackreg/models"
	"hackreg/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// invalidCredentials is returned for unknown email, wrong role and wrong
// password alike, so a caller cannot probe which emails are registered.
func invalidCredentials() *Error {
	return NewError(ErrorCodeUnauthorized, "Invalid credentials")
}

type AuthService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewAuthService(db *gorm.DB, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{db: db, secret: secret, ttl: ttl}
}

// Login authenticates a team leader or member and issues a session token.
// The participant row carries its role, so no re-derivation by searching
// the aggregate is needed.
func (s *AuthService) Login(email, password string) (string, *models.Participant, error) {
	var participant models.Participant
	err := s.db.Preload("Team").
		Where("email = ?", utils.NormalizeEmail(email)).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, invalidCredentials()
		}
		return "", nil, NewError(ErrorCodeInternal, "Internal server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(participant.Password), []byte(password)); err != nil {
		return "", nil, invalidCredentials()
	}

	claims := auth.Claims{
		Email: participant.Email,
		Name:  participant.Name,
		Role:  participant.Role,
	}
	if participant.Team != nil {
		claims.TeamID = participant.Team.ID
		claims.TeamName = participant.Team.Name
	} else {
		claims.TeamID = participant.TeamID
	}

	token, err := auth.Sign(claims, s.secret, s.ttl)
	if err != nil {
		return "", nil, NewError(ErrorCodeInternal, "Failed to generate token")
	}

	return token, &participant, nil
}

// LoginAdmin authenticates an organizer account and issues an admin token.
func (s *AuthService) LoginAdmin(username, password string) (string, *models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, invalidCredentials()
		}
		return "", nil, NewError(ErrorCodeInternal, "Internal server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, invalidCredentials()
	}

	s.db.Model(&admin).Update("last_login", time.Now())

	token, err := auth.Sign(auth.Claims{
		Name: admin.Username,
		Role: models.RoleAdmin,
	}, s.secret, s.ttl)
	if err != nil {
		return "", nil, NewError(ErrorCodeInternal, "Failed to generate token")
	}

	return token, &admin, nil
}

// TTL reports the configured token lifetime.
func (s *AuthService) TTL() time.Duration {
	return s.ttl
}
