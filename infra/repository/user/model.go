package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:100;not null"`
	NationalID string    `gorm:"type:char(11);uniqueIndex:idx_users_national_id;not null"`
	Password   string    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
