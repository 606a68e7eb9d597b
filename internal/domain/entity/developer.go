package entity

import "time"

type DeveloperStatus string

const (
	DeveloperStatusActive  DeveloperStatus = "ACTIVE"
	DeveloperStatusDeleted DeveloperStatus = "DELETED"
)

// Developer is the persisted developer record
type Developer struct {
	ID        int             `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string          `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string          `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string          `gorm:"type:varchar(255);uniqueIndex:developers_email_key;not null" json:"email"`
	Specialty string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Status    DeveloperStatus `gorm:"type:varchar(20);not null;default:ACTIVE;index" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Developer) TableName() string {
	return "developers"
}

func (d *Developer) IsActive() bool {
	return d.Status == DeveloperStatusActive
}
