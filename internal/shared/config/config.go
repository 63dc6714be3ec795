package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	DatabaseURL     string

	// LLM provider.
	LLMModel        string
	LLMTimeout      time.Duration
	OpenAIAPIKey    string
	TailorMinLength int

	// Job search providers.
	JSearchAPIKey     string
	JobCacheTTL       time.Duration
	FilterBeforeScore bool

	// Temp vault.
	VaultDir        string
	ArchiveDir      string
	ArchiveEnabled  bool
	ArchiveS3Bucket string
	ArchiveS3Prefix string
	AWSRegion       string
	VaultExpiry     time.Duration
	ArchiveExpiry   time.Duration
	SweepInterval   time.Duration

	// External collaborators.
	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
	DIDAPIKey         string
	DIDAvatarURL      string
	TwilioSID         string
	TwilioToken       string
	TwilioPhone       string

	// Google OAuth.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             env,
		DatabaseURL:     dbURL,

		LLMModel:        getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:      getEnvDuration("LLM_TIMEOUT", 30*time.Second),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		TailorMinLength: getEnvInt("TAILOR_MIN_LENGTH", 100),

		JSearchAPIKey:     os.Getenv("JSEARCH_API_KEY"),
		JobCacheTTL:       getEnvDuration("JOB_CACHE_TTL", 10*time.Minute),
		FilterBeforeScore: getEnvBool("JOBS_FILTER_BEFORE_SCORE", true),

		VaultDir:        getEnv("VAULT_DIR", "/tmp/career_ai_vault"),
		ArchiveDir:      getEnv("VAULT_ARCHIVE_DIR", "/tmp/career_ai_archive"),
		ArchiveEnabled:  getEnvBool("VAULT_ARCHIVE_ENABLED", false),
		ArchiveS3Bucket: os.Getenv("VAULT_ARCHIVE_S3_BUCKET"),
		ArchiveS3Prefix: getEnv("VAULT_ARCHIVE_S3_PREFIX", "archive/"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		VaultExpiry:     getEnvDuration("VAULT_EXPIRY", 48*time.Hour),
		ArchiveExpiry:   getEnvDuration("VAULT_ARCHIVE_EXPIRY", 60*24*time.Hour),
		SweepInterval:   getEnvDuration("VAULT_SWEEP_INTERVAL", time.Hour),

		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: getEnv("ELEVENLABS_VOICE_ID", "EXAVITQu4vr4xnSDxMaL"),
		DIDAPIKey:         os.Getenv("D_ID_API_KEY"),
		DIDAvatarURL:      os.Getenv("D_ID_AVATAR_URL"),
		TwilioSID:         os.Getenv("TWILIO_SID"),
		TwilioToken:       os.Getenv("TWILIO_TOKEN"),
		TwilioPhone:       os.Getenv("TWILIO_PHONE"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		UIRedirectURL:      os.Getenv("UI_REDIRECT_URL"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config %s invalid int %q, using default", key, raw)
		return def
	}
	return val
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("config %s invalid bool %q, using default", key, raw)
		return def
	}
	return val
}

// getEnvDuration accepts either a bare integer number of seconds or a Go
// duration string ("10m", "48h").
func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config %s invalid duration %q, using default", key, raw)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
