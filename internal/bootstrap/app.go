package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/apply"
	"careerai-backend/internal/extract"
	"careerai-backend/internal/interview"
	"careerai-backend/internal/jobs"
	"careerai-backend/internal/llm"
	"careerai-backend/internal/llm/openai"
	"careerai-backend/internal/match"
	"careerai-backend/internal/notify"
	"careerai-backend/internal/render"
	"careerai-backend/internal/shared/config"
	"careerai-backend/internal/shared/server"
	"careerai-backend/internal/shared/storage/db"
	"careerai-backend/internal/tailor"
	"careerai-backend/internal/users"
	"careerai-backend/internal/vault"
)

// App holds shared dependencies built from config.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Vault  *vault.Vault

	LLM          llm.Client
	UsersRepo    users.Repo
	UsersService *users.Service
	JobsService  *jobs.Service
	TailorSvc    *tailor.Service
	ApplySvc     *apply.Service
	InterviewSvc *interview.Service
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var usersRepo users.Repo
	if sqlDB != nil {
		usersRepo = &users.PGRepo{DB: sqlDB}
	} else {
		usersRepo = users.NewMemoryRepo()
	}
	usersSvc := users.NewService(usersRepo)

	artifactVault, err := buildVault(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var llmClient llm.Client
	if cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMTimeout)
		if err != nil {
			return nil, fmt.Errorf("build llm client: %w", err)
		}
		llmClient = client
	} else {
		log.Printf("bootstrap: OPENAI_API_KEY empty; semantic scoring degrades to keyword path")
	}

	aggregator := match.NewAggregator(llmClient)
	tailorSvc := tailor.NewService(llmClient, aggregator, usersSvc, cfg.TailorMinLength)

	jobsSvc := jobs.NewService(
		[]jobs.Provider{
			jobs.NewJSearchProvider(cfg.JSearchAPIKey),
			jobs.NewRemotiveProvider(),
		},
		&jobs.LLMFallbackProvider{LLM: llmClient},
		jobs.NewCache(cfg.JobCacheTTL),
		llmClient,
		cfg.FilterBeforeScore,
	)

	sms := notify.NewSMSClient(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioPhone)
	applySvc := apply.NewService(tailorSvc, artifactVault, sms)

	tts := interview.NewTTSClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID)
	avatar := interview.NewAvatarClient(cfg.DIDAPIKey)
	if cfg.DIDAvatarURL != "" {
		avatar.SourceURL = cfg.DIDAvatarURL
	}
	interviewSvc := interview.NewService(llmClient, tts, avatar, artifactVault)

	googleAuth := users.NewGoogleService(
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, usersSvc)

	app := &App{
		Config:       cfg,
		DB:           sqlDB,
		Vault:        artifactVault,
		LLM:          llmClient,
		UsersRepo:    usersRepo,
		UsersService: usersSvc,
		JobsService:  jobsSvc,
		TailorSvc:    tailorSvc,
		ApplySvc:     applySvc,
		InterviewSvc: interviewSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		MatchHandler:     match.NewHandler(aggregator),
		TailorHandler:    tailor.NewHandler(tailorSvc),
		JobsHandler:      jobs.NewHandler(jobsSvc),
		VaultHandler:     vault.NewHandler(artifactVault),
		ExtractHandler:   extract.NewHandler(usersSvc),
		RenderHandler:    render.NewHandler(),
		ApplyHandler:     apply.NewHandler(applySvc),
		InterviewHandler: interview.NewHandler(interviewSvc),
		UsersHandler:     users.NewHandler(usersSvc),
		GoogleAuth:       googleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildVault(ctx context.Context, cfg config.Config) (*vault.Vault, error) {
	opts := vault.Options{
		WorkingDir:     cfg.VaultDir,
		ArchiveDir:     cfg.ArchiveDir,
		ArchiveEnabled: cfg.ArchiveEnabled,
		WorkingExpiry:  cfg.VaultExpiry,
		ArchiveExpiry:  cfg.ArchiveExpiry,
	}
	if cfg.ArchiveEnabled && cfg.ArchiveS3Bucket != "" {
		mirror, err := vault.NewS3Mirror(ctx, cfg.AWSRegion, cfg.ArchiveS3Bucket, cfg.ArchiveS3Prefix)
		if err != nil {
			return nil, fmt.Errorf("build s3 mirror: %w", err)
		}
		opts.Mirror = mirror
	}
	return vault.New(opts)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
