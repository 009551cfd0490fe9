package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPAddr  string `env:"HTTP_ADDR" env-default:":8080"`
	PublicURL string `env:"PUBLIC_URL" env-default:"http://localhost:8080"`

	DBDriver string `env:"DB_DRIVER" env-default:"sqlite"`
	DBDSN    string `env:"DB_DSN"`

	BlobBasePath string `env:"BLOB_BASE_PATH" env-default:"./data/audio"`

	DeepgramAPIKey string `env:"DEEPGRAM_API_KEY"`
	DeepgramVoice  string `env:"DEEPGRAM_VOICE" env-default:"aura-asteria-en"`

	AuthHMACSecret string `env:"AUTH_HMAC_SECRET" env-default:"supersecret-dev-key"`
	AdminUser      string `env:"ADMIN_USER" env-default:"admin"`
	AdminPassHash  string `env:"ADMIN_PASS_HASH" env-default:"$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"` // bcrypt
	TokenTTLHours  int    `env:"TOKEN_TTL_HOURS" env-default:"8"`

	CORSOrigins []string `env:"CORS_ORIGINS" env-default:"http://localhost:3000"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")
	return cfg, nil
}

// AudioPublicBase is the URL prefix the asset handler serves cached audio
// under; FSStore builds public object URLs from it.
func (c Config) AudioPublicBase() string {
	return c.PublicURL + "/audio"
}
