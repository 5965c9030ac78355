package bootstrap

import (
	"context"
	"log"
	"time"

	"notes-be/internal/config"
	"notes-be/internal/controller"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/repository/unitofwork"
	"notes-be/internal/service"
	"notes-be/internal/session"
	"notes-be/pkg/identity/factory"
	"notes-be/pkg/summarizer"
	"notes-be/pkg/summarizer/gemini"

	pktNats "notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	FolderController    controller.IFolderController
	NoteController      controller.INoteController
	SummarizeController controller.ISummarizeController
	HealthController    controller.IHealthController

	// Session gates, shared by server route registration
	SessionGate     fiber.Handler
	SessionViewGate fiber.Handler

	// Background Services (Exposed for main.go to run)
	AuditService service.IAuditService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (optional; services nil-check the publisher)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Session storage
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionStore session.Store
	if cfg.Session.Store == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionStore = session.NewRedisStore(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionStore = session.NewMemoryStore(sessionTTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}
	tokenCodec := session.NewTokenCodec(cfg.Session.Secret, sessionTTL)

	// Identity provider
	identityProvider, err := factory.NewIdentityProvider(
		cfg.Identity.Provider,
		cfg.Identity.GotrueURL,
		cfg.Identity.GotrueKey,
		uowFactory,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Identity Provider: %v", err)
	}
	log.Printf("[INFO] Using Identity Provider: %s", cfg.Identity.Provider)

	// Summarizer (nil when no key is configured; service answers 503)
	var summaryProvider summarizer.Provider
	if cfg.Ai.GeminiAPIKey != "" {
		summaryProvider = gemini.NewProvider(cfg.Ai.GeminiAPIKey, cfg.Ai.GeminiModel)
		log.Printf("[INFO] Using Summarizer: GEMINI (%s)", cfg.Ai.GeminiModel)
	} else {
		log.Printf("[WARN] GOOGLE_GEMINI_API_KEY not set, summarization disabled")
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.AuditTopic, pubSub)
	auditService := service.NewAuditService(pubSub, cfg.App.AuditTopic, uowFactory, sysLogger)

	authService := service.NewAuthService(
		identityProvider,
		sessionStore,
		tokenCodec,
		sessionTTL,
		sysLogger,
		natsPub,
	)
	folderService := service.NewFolderService(uowFactory, publisherService, sysLogger)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)
	summarizeService := service.NewSummarizeService(summaryProvider)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		FolderController:    controller.NewFolderController(folderService),
		NoteController:      controller.NewNoteController(noteService),
		SummarizeController: controller.NewSummarizeController(summarizeService),
		HealthController:    controller.NewHealthController(),

		SessionGate:     serverutils.RequireSession(tokenCodec, sessionStore),
		SessionViewGate: serverutils.RequireSessionOrRedirect(tokenCodec, sessionStore, "/login"),

		AuditService: auditService,
		Logger:       sysLogger,
	}
}
