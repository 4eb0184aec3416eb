// README: Config loader; .env + environment variables via viper, with defaults.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	AI struct {
		GeminiKey    string
		OpenAIKey    string
		AnthropicKey string
		Timeout      time.Duration
	}
	Maps struct {
		APIKey string
	}
	Weather struct {
		APIKey string
	}
	Events struct {
		Token string
	}
	Speech struct {
		APIKey   string
		AudioDir string
	}
	Redis struct {
		Addr string
		TTL  time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is honoured when present, matching how the start scripts run the
// service locally. Provider keys keep their upstream names (GEMINI_API_KEY etc.)
// so existing deployments keep working.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("TRIPTELLER_HTTP_ADDR", ":8080")
	v.SetDefault("TRIPTELLER_AI_TIMEOUT_SECONDS", 30)
	v.SetDefault("TRIPTELLER_AUDIO_DIR", "temp_audio")
	v.SetDefault("TRIPTELLER_CACHE_TTL_SECONDS", 900)
	v.SetDefault("TRIPTELLER_LOG_LEVEL", "info")
	v.SetDefault("TRIPTELLER_LOG_FORMAT", "json")

	var cfg Config
	cfg.HTTP.Addr = v.GetString("TRIPTELLER_HTTP_ADDR")
	cfg.AI.GeminiKey = v.GetString("GEMINI_API_KEY")
	cfg.AI.OpenAIKey = v.GetString("OPENAI_API_KEY")
	cfg.AI.AnthropicKey = v.GetString("ANTHROPIC_API_KEY")
	cfg.AI.Timeout = time.Duration(v.GetInt("TRIPTELLER_AI_TIMEOUT_SECONDS")) * time.Second
	cfg.Maps.APIKey = v.GetString("GOOGLE_MAPS_API_KEY")
	cfg.Weather.APIKey = v.GetString("OPENWEATHER_API_KEY")
	cfg.Events.Token = v.GetString("EVENTBRITE_TOKEN")
	cfg.Speech.APIKey = v.GetString("ELEVENLABS_API_KEY")
	cfg.Speech.AudioDir = v.GetString("TRIPTELLER_AUDIO_DIR")
	cfg.Redis.Addr = v.GetString("TRIPTELLER_REDIS_ADDR")
	cfg.Redis.TTL = time.Duration(v.GetInt("TRIPTELLER_CACHE_TTL_SECONDS")) * time.Second
	cfg.Log.Level = v.GetString("TRIPTELLER_LOG_LEVEL")
	cfg.Log.Format = v.GetString("TRIPTELLER_LOG_FORMAT")
	return cfg, nil
}
