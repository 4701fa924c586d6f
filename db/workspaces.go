package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrUnknownTeam is returned for any lookup of a team that has no
	// workspace or settings record. Callers surface it, never default it.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrAlreadyRegistered is returned when an install callback arrives for
	// a team that already has a workspace. The existing credentials are
	// never overwritten.
	ErrAlreadyRegistered = errors.New("team already registered")
)

// RegisterWorkspace persists a new workspace entry. Registration is
// idempotent: a second install for the same team is rejected with
// ErrAlreadyRegistered and performs no write.
//
// There is no transaction around the existence check, so two installs racing
// for the same team can both observe "not found"; the unique index on
// team_id makes the loser fail at insert instead of duplicating the row.
func (s *Store) RegisterWorkspace(w Workspace) error {
	var existing Workspace
	err := s.db.Where("team_id = ?", w.TeamID).First(&existing).Error
	if err == nil {
		return fmt.Errorf("workspace %s: %w", w.TeamID, ErrAlreadyRegistered)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("RegisterWorkspace: lookup failed for team %s: %w", w.TeamID, err)
	}

	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	if err := s.db.Create(&w).Error; err != nil {
		return fmt.Errorf("RegisterWorkspace: failed to save team %s: %w", w.TeamID, err)
	}
	return nil
}

func (s *Store) Workspace(teamID string) (*Workspace, error) {
	var w Workspace
	err := s.db.Where("team_id = ?", teamID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("workspace %s: %w", teamID, ErrUnknownTeam)
	}
	if err != nil {
		return nil, fmt.Errorf("Workspace: lookup failed for team %s: %w", teamID, err)
	}
	return &w, nil
}

// TokenForTeam resolves the stored (still encrypted) bot token for a team.
func (s *Store) TokenForTeam(teamID string) (string, error) {
	w, err := s.Workspace(teamID)
	if err != nil {
		return "", err
	}
	return w.AccessToken, nil
}

// BotUserForTeam resolves the bot user id for a team.
func (s *Store) BotUserForTeam(teamID string) (string, error) {
	w, err := s.Workspace(teamID)
	if err != nil {
		return "", err
	}
	return w.BotUser, nil
}
