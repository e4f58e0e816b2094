package entity

type Service struct {
	BaseEntity
	Name        string  `json:"name" gorm:"type:varchar(255)"`
	Category    string  `json:"category" gorm:"type:varchar(50);index"`
	Description string  `json:"description" gorm:"type:TEXT"`
	Phone       string  `json:"phone" gorm:"type:varchar(20)"`
	Email       string  `json:"email" gorm:"type:varchar(100)"`
	Address     string  `json:"address" gorm:"type:varchar(255)"`
	ImageURL    string  `json:"image_url" gorm:"type:TEXT"`
	Rating      float64 `json:"rating" gorm:"default:0"`
	ReviewCount int     `json:"review_count" gorm:"default:0"`
	IsVerified  bool    `json:"is_verified" gorm:"default:false"`
}
