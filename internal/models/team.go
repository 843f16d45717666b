package models

import "time"

type Team struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ManagerID   uint64    `gorm:"not null;index" json:"manager_id"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
}
