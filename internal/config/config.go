package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Postgres DSN; when empty the embedded sqlite database is used.
	DBUrl      string
	SQLitePath string

	// "disk" or "s3"
	ImageStore string
	ImageDir   string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3KeyPrefix string
	S3PublicURL string
	S3AccessKey string
	S3SecretKey string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "5000"),

		DBUrl:      getEnv("DATABASE_URL", ""),
		SQLitePath: getEnv("SQLITE_PATH", "data.db"),

		ImageStore: getEnv("IMAGE_STORE", "disk"),
		ImageDir:   getEnv("IMAGE_DIR", "images"),

		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3KeyPrefix: getEnv("S3_KEY_PREFIX", "images"),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),
		S3AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
