package config

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vecino-activo/entity"
	"vecino-activo/geo"
)

// SeedDefaults inserts the community rooms and a starter set of neighborhood
// units on first boot. Both seeds are idempotent: a non-empty table is left
// alone.
func SeedDefaults(db *gorm.DB, log *logrus.Logger) {
	seedRooms(db, log)
	seedNeighborhoods(db, log)
}

func seedRooms(db *gorm.DB, log *logrus.Logger) {
	var count int64
	if err := db.Model(&entity.ChatRoom{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("Failed to count chat rooms, skipping seed")
		return
	}
	if count > 0 {
		return
	}

	rooms := []entity.ChatRoom{
		{Name: "Junta de Vecinos", Avatar: "👥"},
		{Name: "Seguridad UV4", Avatar: "🛡️"},
		{Name: "Grupo Jardinería", Avatar: "🌱"},
		{Name: "Mercado Comunitario", Avatar: "🛒"},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.WithError(err).Error("Failed to seed chat rooms")
		return
	}
	log.Infof("Seeded %d default chat rooms", len(rooms))
}

type seedUnit struct {
	code       string
	name       string
	commune    string
	population int
	households int
	greenArea  int
	polygon    [][][]float64
}

func seedNeighborhoods(db *gorm.DB, log *logrus.Logger) {
	var count int64
	if err := db.Model(&entity.Neighborhood{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("Failed to count neighborhoods, skipping seed")
		return
	}
	if count > 0 {
		return
	}

	units := []seedUnit{
		{
			code: "UV-4", name: "Unidad Vecinal 4", commune: "Ñuñoa",
			population: 6240, households: 2180, greenArea: 14500,
			polygon: [][][]float64{{
				{-70.6105, -33.4602}, {-70.5981, -33.4602},
				{-70.5981, -33.4515}, {-70.6105, -33.4515},
				{-70.6105, -33.4602},
			}},
		},
		{
			code: "UV-12", name: "Unidad Vecinal 12", commune: "Ñuñoa",
			population: 4870, households: 1640, greenArea: 8200,
			polygon: [][][]float64{{
				{-70.5981, -33.4602}, {-70.5873, -33.4602},
				{-70.5873, -33.4521}, {-70.5981, -33.4521},
				{-70.5981, -33.4602},
			}},
		},
		{
			code: "UV-18", name: "Unidad Vecinal 18", commune: "Providencia",
			population: 7310, households: 2960, greenArea: 21300,
			polygon: [][][]float64{{
				{-70.6204, -33.4388}, {-70.6067, -33.4388},
				{-70.6067, -33.4290}, {-70.6204, -33.4290},
				{-70.6204, -33.4388},
			}},
		},
	}

	neighborhoods := make([]entity.Neighborhood, 0, len(units))
	for _, u := range units {
		geometry, err := json.Marshal(map[string]any{
			"type":        "Polygon",
			"coordinates": u.polygon,
		})
		if err != nil {
			log.WithError(err).Errorf("Failed to encode geometry for %s", u.code)
			continue
		}
		bounds := geo.FromPolygon(u.polygon)
		neighborhoods = append(neighborhoods, entity.Neighborhood{
			Code:       u.code,
			Name:       u.name,
			Commune:    u.commune,
			Region:     "Región Metropolitana",
			Population: u.population,
			Households: u.households,
			GreenArea:  u.greenArea,
			Geometry:   datatypes.JSON(geometry),
			MinLon:     bounds.MinLon,
			MinLat:     bounds.MinLat,
			MaxLon:     bounds.MaxLon,
			MaxLat:     bounds.MaxLat,
		})
	}

	if err := db.Create(&neighborhoods).Error; err != nil {
		log.WithError(err).Error("Failed to seed neighborhoods")
		return
	}
	log.Infof("Seeded %d neighborhood units", len(neighborhoods))
}
