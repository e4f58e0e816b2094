package entity

import "gorm.io/datatypes"

// Neighborhood is an administrative neighborhood unit (unidad vecinal).
// Geometry holds the raw GeoJSON geometry; the bounding box is denormalized
// into columns so viewport queries never have to parse polygons.
type Neighborhood struct {
	BaseEntity
	Code       string `json:"code" gorm:"type:varchar(20);uniqueIndex"`
	Name       string `json:"name" gorm:"type:varchar(255)"`
	Commune    string `json:"commune" gorm:"type:varchar(100)"`
	Region     string `json:"region" gorm:"type:varchar(100)"`
	Population int    `json:"population"`
	Households int    `json:"households"`
	GreenArea  int    `json:"green_area"`

	Geometry datatypes.JSON `json:"geometry" gorm:"type:jsonb"`

	MinLon float64 `json:"-" gorm:"index"`
	MinLat float64 `json:"-" gorm:"index"`
	MaxLon float64 `json:"-" gorm:"index"`
	MaxLat float64 `json:"-" gorm:"index"`
}
