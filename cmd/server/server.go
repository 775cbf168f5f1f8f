package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/codequest-gg/codequest-api/internal/config"
	"github.com/codequest-gg/codequest-api/internal/content"
	"github.com/codequest-gg/codequest-api/internal/handlers/httpapi"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/character"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/chest"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/combat"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/inventory"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/progression"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/quest"
	"github.com/codequest-gg/codequest-api/internal/pkg/clock"
	"github.com/codequest-gg/codequest-api/internal/pkg/idgen"
	"github.com/codequest-gg/codequest-api/internal/pkg/rng"
	redisclient "github.com/codequest-gg/codequest-api/internal/redis"
	chestprogress "github.com/codequest-gg/codequest-api/internal/repositories/chest_progress"
	combatsession "github.com/codequest-gg/codequest-api/internal/repositories/combat_session"
	contentrepo "github.com/codequest-gg/codequest-api/internal/repositories/content"
	inventoryrepo "github.com/codequest-gg/codequest-api/internal/repositories/inventory"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
	questprogress "github.com/codequest-gg/codequest-api/internal/repositories/quest_progress"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the CodeQuest API server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpapi.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Mount("/v1", handler.Routes())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}

func buildHandler(cfg *config.Config) (*httpapi.Handler, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	bundle, err := content.LoadDir(cfg.ContentDir)
	if err != nil {
		return nil, err
	}

	contentRepo, err := contentrepo.NewMemory(&contentrepo.MemoryConfig{
		Quests:     bundle.Quests,
		Characters: bundle.Characters,
		Enemies:    bundle.Enemies,
		Spawns:     bundle.Spawns,
		Items:      bundle.Items,
		Chests:     bundle.Chests,
	})
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	roller := rng.New()

	playerRepo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	questProgressRepo, err := questprogress.NewRedis(&questprogress.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	inventoryRepo, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	sessionRepo, err := combatsession.NewRedis(&combatsession.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, err
	}
	chestProgressRepo, err := chestprogress.NewRedis(&chestprogress.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	progressionService, err := progression.NewOrchestrator(&progression.Config{
		PlayerRepo:  playerRepo,
		IDGenerator: idgen.NewUUID("player"),
	})
	if err != nil {
		return nil, err
	}

	questService, err := quest.NewOrchestrator(&quest.Config{
		PlayerRepo:        playerRepo,
		QuestProgressRepo: questProgressRepo,
		ContentRepo:       contentRepo,
		Clock:             clk,
	})
	if err != nil {
		return nil, err
	}

	characterService, err := character.NewOrchestrator(&character.Config{
		PlayerRepo:        playerRepo,
		QuestProgressRepo: questProgressRepo,
		ContentRepo:       contentRepo,
	})
	if err != nil {
		return nil, err
	}

	combatService, err := combat.NewOrchestrator(&combat.Config{
		PlayerRepo:    playerRepo,
		SessionRepo:   sessionRepo,
		InventoryRepo: inventoryRepo,
		ContentRepo:   contentRepo,
		IDGenerator:   idgen.NewUUID("session"),
		Roller:        roller,
		SessionTTL:    time.Duration(cfg.CombatSession.TTLMinutes) * time.Minute,
	})
	if err != nil {
		return nil, err
	}

	chestService, err := chest.NewOrchestrator(&chest.Config{
		PlayerRepo:        playerRepo,
		InventoryRepo:     inventoryRepo,
		ChestProgressRepo: chestProgressRepo,
		ContentRepo:       contentRepo,
		Roller:            roller,
		Clock:             clk,
	})
	if err != nil {
		return nil, err
	}

	inventoryService, err := inventory.NewOrchestrator(&inventory.Config{
		PlayerRepo:    playerRepo,
		InventoryRepo: inventoryRepo,
		ContentRepo:   contentRepo,
	})
	if err != nil {
		return nil, err
	}

	return httpapi.NewHandler(&httpapi.Config{
		ProgressionService: progressionService,
		QuestService:       questService,
		CharacterService:   characterService,
		CombatService:      combatService,
		ChestService:       chestService,
		InventoryService:   inventoryService,
	})
}
