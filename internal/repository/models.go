package repository

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(16);not null;default:'user'"`
}

type Meal struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	EatenAt     time.Time `gorm:"not null;index"`
	InDiet      bool      `gorm:"not null"`
	UserID      uint      `gorm:"not null;index"`
}

type Session struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
}
