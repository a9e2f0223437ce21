package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging       LoggingConfig       `yaml:"logging"`
	ServerAddr    string              `yaml:"server_addr"`
	OTPRateLimit  OTPRateLimitConfig  `yaml:"otp_rate_limit"`
	DefaultImages DefaultImagesConfig `yaml:"default_images"`

	// Environment-supplied settings, never stored in config.yaml.
	MongoURI    string
	MongoDBName string
	Minio       MinioConfig
	Mail        MailConfig
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// OTPRateLimitConfig caps OTP sends per client address.
// MaxRequests <= 0 means no limit.
type OTPRateLimitConfig struct {
	MaxRequests   int `yaml:"max_requests"`
	WindowMinutes int `yaml:"window_minutes"`
}

// DefaultImagesConfig holds the placeholder URLs used when no image is
// uploaded with a blog post or a user profile.
type DefaultImagesConfig struct {
	BlogImageURL   string `yaml:"blog_image_url"`
	AuthorImageURL string `yaml:"author_image_url"`
}

type MinioConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Bucket          string
}

type MailConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	RefreshToken string
	Sender       string
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.MongoURI = os.Getenv("MONGODB_URI")
	c.MongoDBName = os.Getenv("MONGODB_DB")
	c.Minio = MinioConfig{
		Endpoint:        os.Getenv("MINIO_ENDPOINT"),
		AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:          os.Getenv("MINIO_USE_SSL") == "true",
		Bucket:          os.Getenv("MINIO_BUCKET"),
	}
	c.Mail = MailConfig{
		ClientID:     os.Getenv("MAIL_CLIENT_ID"),
		ClientSecret: os.Getenv("MAIL_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("MAIL_REDIRECT_URI"),
		RefreshToken: os.Getenv("MAIL_REFRESH_TOKEN"),
		Sender:       os.Getenv("EMAIL_USER"),
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
