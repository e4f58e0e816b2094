package entity

import (
	"time"

	"vecino-activo/enum"
)

type Alert struct {
	BaseEntity
	UserID      string           `json:"user_id" gorm:"type:varchar(255);not null"`
	UserName    string           `json:"user_name" gorm:"type:varchar(255)"`
	Type        enum.AlertType   `json:"type" gorm:"type:varchar(20)"`
	Description string           `json:"description" gorm:"type:TEXT"`
	Location    string           `json:"location" gorm:"type:varchar(255)"`
	Status      enum.AlertStatus `json:"status" gorm:"type:varchar(10);default:'active'"`
	ResolvedAt  *time.Time       `json:"resolved_at"`
}
