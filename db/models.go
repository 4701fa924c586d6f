package db

import "time"

// Workspace is one installed Slack team. AccessToken is stored encrypted
// (AES-GCM, base64) and only decrypted when a reply is sent.
type Workspace struct {
	ID          uint   `gorm:"primaryKey"`
	TeamID      string `gorm:"uniqueIndex;not null"`
	AccessToken string `gorm:"not null"`
	BotUser     string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamSettings carries per-team preferences. CronMensa/CronTime reserve the
// daily-publish slot; nothing dispatches on them yet. CronMensa is not
// checked against the live mensa list.
type TeamSettings struct {
	ID        uint   `gorm:"primaryKey"`
	TeamID    string `gorm:"uniqueIndex;not null"`
	Language  string `gorm:"not null;default:en"`
	CronMensa string
	CronTime  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	LanguageEN = "en"
	LanguageDE = "de"
)
