// server/config/config.go
package config

import (
	"time"

	"github.com/spf13/viper"
)

// --- Sub-structs mirroring config.yaml ---

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ClientDomain string `mapstructure:"clientDomain"`
	Mode         string `mapstructure:"mode"`
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbName"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type RedisConfig struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	ReportTTL time.Duration `mapstructure:"reportTTL"`
}

type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type StorageConfig struct {
	Driver    string `mapstructure:"driver"` // "local" or "s3"
	LocalRoot string `mapstructure:"localRoot"`
	PublicURL string `mapstructure:"publicURL"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// --- Root config ---

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Mail    MailConfig    `mapstructure:"mail"`
	Storage StorageConfig `mapstructure:"storage"`
	S3      S3Config      `mapstructure:"s3"`
	Admin   AdminConfig   `mapstructure:"admin"`
}

// LoadConfig reads config.yaml from path and overrides it with environment variables.
// A missing file is not an error; the environment alone is enough.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "4000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("mongo.dbName", "jiffy")
	v.SetDefault("jwt.expiration", 48*time.Hour)
	v.SetDefault("logger.level", "info")
	v.SetDefault("redis.reportTTL", time.Minute)
	v.SetDefault("mail.port", 587)
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.localRoot", "uploads")
	v.SetDefault("storage.publicURL", "/uploads")

	v.AutomaticEnv()

	// MONGO_URI, PORT, SECRET and CLIENT_DOMAIN match the existing deployment.
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.dbName", "MONGO_DBNAME")
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.clientDomain", "CLIENT_DOMAIN")
	v.BindEnv("server.mode", "GIN_MODE")
	v.BindEnv("jwt.secret", "SECRET")
	v.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.json", "LOG_JSON")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.reportTTL", "REDIS_REPORT_TTL")
	v.BindEnv("mail.host", "MAIL_HOST")
	v.BindEnv("mail.port", "MAIL_PORT")
	v.BindEnv("mail.username", "MAIL_USERNAME")
	v.BindEnv("mail.password", "MAIL_PASSWORD")
	v.BindEnv("mail.from", "MAIL_FROM")
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.localRoot", "STORAGE_LOCAL_ROOT")
	v.BindEnv("storage.publicURL", "STORAGE_PUBLIC_URL")
	v.BindEnv("s3.bucket", "S3_BUCKET")
	v.BindEnv("s3.region", "S3_REGION")
	v.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	v.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	v.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	v.BindEnv("admin.email", "ADMIN_EMAIL")
	v.BindEnv("admin.password", "ADMIN_PASSWORD")

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
