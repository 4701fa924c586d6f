package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamSettingsFor resolves the per-team preferences. A missing record is
// ErrUnknownTeam; a dialog can never be built without settings.
func (s *Store) TeamSettingsFor(teamID string) (*TeamSettings, error) {
	var settings TeamSettings
	err := s.db.Where("team_id = ?", teamID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("settings for team %s: %w", teamID, ErrUnknownTeam)
	}
	if err != nil {
		return nil, fmt.Errorf("TeamSettingsFor: lookup failed for team %s: %w", teamID, err)
	}
	return &settings, nil
}

// SaveTeamSettings upserts a settings record keyed by team id.
func (s *Store) SaveTeamSettings(settings TeamSettings) error {
	now := time.Now().UTC()
	settings.UpdatedAt = now

	var existing TeamSettings
	result := s.db.Where("team_id = ?", settings.TeamID).First(&existing)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		settings.CreatedAt = now
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"language", "cron_mensa", "cron_time", "updated_at"}),
	}).Create(&settings).Error
	if err != nil {
		return fmt.Errorf("SaveTeamSettings: failed to save settings for team %s: %w", settings.TeamID, err)
	}
	return nil
}
