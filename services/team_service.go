// services/team_service.go - team registration workflow and account store
package services

import (
	"errors"
	"strconv"

	"hackreg/models"
	"hackreg/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TeamService struct {
	db     *gorm.DB
	mailer CredentialMailer
}

func NewTeamService(db *gorm.DB, mailer CredentialMailer) *TeamService {
	return &TeamService{db: db, mailer: mailer}
}

type TeamInput struct {
	Name        string
	Description string
	// ProblemID is the raw problem reference from the form. Empty or "0"
	// means no problem selected.
	ProblemID string
}

type LeaderInput struct {
	Name   string
	Email  string
	Phone  string
	Gender string
}

type MemberInput struct {
	Name   string
	Email  string
	Gender string
}

type RegistrationInput struct {
	Team    TeamInput
	Leader  LeaderInput
	Members []MemberInput
}

// Credential is the one-time disclosure of a generated password. The
// plaintext exists only here and in the notification email; the store
// keeps the bcrypt hash.
type Credential struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type Credentials struct {
	TeamName string       `json:"teamName"`
	Leader   Credential   `json:"leader"`
	Members  []Credential `json:"members"`
}

// Register runs the full registration workflow: resolve the problem
// reference, check email uniqueness across all existing teams, generate
// one password per person, persist the aggregate in a single transaction
// and queue the credential emails after commit.
//
// The pre-check and the write are two steps, so a concurrent registration
// can still claim an email in between; the unique index on
// participants.email is the backstop, and both cases are reported as a
// conflict.
func (s *TeamService) Register(input RegistrationInput) (*Credentials, error) {
	if input.Team.Name == "" || input.Leader.Email == "" || len(input.Members) == 0 {
		return nil, NewError(ErrorCodeValidation, "Invalid request data")
	}

	problemID, err := s.resolveProblem(input.Team.ProblemID)
	if err != nil {
		return nil, err
	}

	leaderEmail := utils.NormalizeEmail(input.Leader.Email)
	memberEmails := make([]string, len(input.Members))
	for i, m := range input.Members {
		memberEmails[i] = utils.NormalizeEmail(m.Email)
	}

	allEmails := append([]string{leaderEmail}, memberEmails...)
	seen := make(map[string]bool, len(allEmails))
	for _, email := range allEmails {
		if seen[email] {
			return nil, NewError(ErrorCodeConflict, "One or more emails are already registered")
		}
		seen[email] = true
	}

	var count int64
	if err := s.db.Model(&models.Participant{}).Where("email IN ?", allEmails).Count(&count).Error; err != nil {
		return nil, NewError(ErrorCodeInternal, "Internal server error")
	}
	if count > 0 {
		return nil, NewError(ErrorCodeConflict, "One or more emails are already registered")
	}

	leaderPassword := GeneratePassword()
	memberPasswords := make([]string, len(input.Members))
	for i := range input.Members {
		memberPasswords[i] = GeneratePassword()
	}

	team := &models.Team{
		Name:        input.Team.Name,
		Description: input.Team.Description,
		ProblemID:   problemID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		leaderHash, err := bcrypt.GenerateFromPassword([]byte(leaderPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		leader := &models.Participant{
			TeamID:   team.ID,
			Role:     models.RoleLeader,
			Name:     input.Leader.Name,
			Email:    leaderEmail,
			Password: string(leaderHash),
			Phone:    input.Leader.Phone,
			Gender:   input.Leader.Gender,
		}
		if err := tx.Create(leader).Error; err != nil {
			return err
		}

		for i, m := range input.Members {
			hash, err := bcrypt.GenerateFromPassword([]byte(memberPasswords[i]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			member := &models.Participant{
				TeamID:   team.ID,
				Role:     models.RoleMember,
				Name:     m.Name,
				Email:    memberEmails[i],
				Password: string(hash),
				Gender:   m.Gender,
			}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewError(ErrorCodeConflict, "One or more emails are already registered")
		}
		return nil, NewError(ErrorCodeInternal, "Internal server error")
	}

	creds := &Credentials{
		TeamName: team.Name,
		Leader: Credential{
			Name:     input.Leader.Name,
			Email:    leaderEmail,
			Password: leaderPassword,
			Role:     models.RoleLeader,
		},
		Members: make([]Credential, len(input.Members)),
	}
	for i, m := range input.Members {
		creds.Members[i] = Credential{
			Name:     m.Name,
			Email:    memberEmails[i],
			Password: memberPasswords[i],
			Role:     models.RoleMember,
		}
	}

	// Committed at this point: a mail failure must never roll back the
	// registration, so delivery is queued and forgotten.
	if s.mailer != nil {
		s.mailer.QueueCredentials(creds)
	}

	return creds, nil
}

// resolveProblem maps the raw form reference to a problem row ID. "" and
// "0" are the "none selected" sentinel.
func (s *TeamService) resolveProblem(raw string) (*uint, error) {
	if raw == "" || raw == "0" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, NewError(ErrorCodeValidation, "Selected problem statement does not exist")
	}

	var problem models.Problem
	if err := s.db.First(&problem, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(ErrorCodeValidation, "Selected problem statement does not exist")
		}
		return nil, NewError(ErrorCodeInternal, "Internal server error")
	}

	problemID := problem.ID
	return &problemID, nil
}

// FindParticipantByEmail returns the participant owning the given email,
// with its team preloaded. Email matching is case-insensitive via
// normalization.
func (s *TeamService) FindParticipantByEmail(email string) (*models.Participant, error) {
	var participant models.Participant
	err := s.db.Preload("Team").Where("email = ?", utils.NormalizeEmail(email)).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(ErrorCodeNotFound, "participant not found")
		}
		return nil, NewError(ErrorCodeInternal, "Internal server error")
	}
	return &participant, nil
}

// GetTeamByID loads a team aggregate with its problem and participants.
func (s *TeamService) GetTeamByID(teamID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Preload("Problem").Preload("Participants").First(&team, teamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(ErrorCodeNotFound, "Team not found")
		}
		return nil, NewError(ErrorCodeInternal, "Internal server error")
	}
	return &team, nil
}

// ListTeams returns every registration with participants preloaded, for
// the organizer dashboard.
func (s *TeamService) ListTeams() ([]models.Team, error) {
	teams := make([]models.Team, 0)
	err := s.db.Preload("Problem").Preload("Participants").Order("created_at DESC").Find(&teams).Error
	if err != nil {
		return nil, NewError(ErrorCodeInternal, "Internal server error")
	}
	return teams, nil
}
