package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		log.Warnf("no .env file found, relying on environment: %v", err)
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetServerPort() string {
	port := c.Viper.GetString("SERVER_PORT")
	if port == "" {
		port = "3001"
	}
	return port
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

// GetRedisConfig returns the redis address for the realtime bridge. An empty
// address disables the bridge and the hub fans out in-process only.
func (c *Config) GetRedisConfig() (addr, password string, db int) {
	return c.Viper.GetString("REDIS_ADDR"),
		c.Viper.GetString("REDIS_PASSWORD"),
		c.Viper.GetInt("REDIS_DB")
}

func (c *Config) GetCorsOrigin() string {
	origin := c.Viper.GetString("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return origin
}
