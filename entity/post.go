package entity

type Post struct {
	BaseEntity
	AuthorID   string `json:"author_id" gorm:"type:varchar(255);not null"`
	AuthorName string `json:"author_name" gorm:"type:varchar(255)"`
	Content    string `json:"content" gorm:"type:TEXT"`
	Category   string `json:"category" gorm:"type:varchar(50);index"`
	Likes      int    `json:"likes" gorm:"default:0"`
	Comments   int    `json:"comments" gorm:"default:0"`
}
