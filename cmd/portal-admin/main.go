package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/repository"
	"github.com/noah-isme/school-portal-api/internal/seed"
	"github.com/noah-isme/school-portal-api/internal/service"
	"github.com/noah-isme/school-portal-api/pkg/config"
	"github.com/noah-isme/school-portal-api/pkg/logger"
	"github.com/noah-isme/school-portal-api/pkg/storage"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()

	kv, err := store.Open(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open store", "driver", cfg.Storage.Driver, "error", err)
	}
	if pg, ok := kv.(*store.PostgresStore); ok {
		if err := pg.Migrate(ctx); err != nil {
			logr.Sugar().Fatalw("failed to migrate store", "error", err)
		}
	}

	metrics := service.NewMetricsService()
	js := store.NewJSON(store.WithMetrics(kv, metrics), logr)

	userRepo := repository.NewUserRepository(js)
	schoolRepo := repository.NewSchoolRepository(js)
	surveyRepo := repository.NewSurveyRepository(js)
	responseRepo := repository.NewResponseRepository(js)
	fileRepo := repository.NewFileRepository(js)

	if cfg.Seed.Enabled {
		err := seed.Initialize(ctx, seed.Repositories{
			Users:     userRepo,
			Schools:   schoolRepo,
			Surveys:   surveyRepo,
			Responses: responseRepo,
			Files:     fileRepo,
		}, logr)
		if err != nil {
			logr.Sugar().Fatalw("failed to seed demo data", "error", err)
		}
	}

	authService := service.NewAuthService(userRepo, nil, logr)
	schoolService := service.NewSchoolService(schoolRepo, surveyRepo, responseRepo, fileRepo, nil, logr)

	if user, err := authService.Resume(ctx); err != nil {
		logr.Warn("session resume failed", zap.Error(err))
	} else if user != nil {
		logr.Info("session resumed", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	}

	schools, err := schoolService.List(ctx)
	if err != nil {
		logr.Sugar().Fatalw("failed to list schools", "error", err)
	}
	for _, school := range schools {
		stats, err := schoolService.Stats(ctx, school.ID)
		if err != nil {
			logr.Warn("failed to compute stats", zap.String("school_id", school.ID), zap.Error(err))
			continue
		}
		logr.Info("school",
			zap.String("school_id", school.ID),
			zap.String("name", school.Name),
			zap.Int("surveys", stats.SurveyCount),
			zap.Int("responses", stats.ResponseCount),
			zap.Int("files", stats.FileCount))
	}

	if cfg.Export.OnStart {
		local, err := storage.NewLocalStorage(cfg.Export.Dir)
		if err != nil {
			logr.Sugar().Fatalw("failed to prepare export directory", "error", err)
		}
		if removed, err := local.CleanupOlderThan(cfg.Export.RetentionTTL); err != nil {
			logr.Warn("export cleanup failed", zap.Error(err))
		} else if len(removed) > 0 {
			logr.Info("expired exports removed", zap.Int("count", len(removed)))
		}

		exportService := service.NewExportService(js, schoolRepo, userRepo, surveyRepo, responseRepo, fileRepo, local, logr)
		name, err := exportService.WriteFullExport(ctx)
		if err != nil {
			logr.Sugar().Fatalw("failed to write export", "error", err)
		}
		logr.Info("export complete", zap.String("file", local.Path(name)))
	}

	snapshot := metrics.Snapshot()
	logr.Info("store activity",
		zap.Uint64("reads", snapshot.ReadsTotal),
		zap.Uint64("writes", snapshot.WritesTotal),
		zap.Uint64("write_failures", snapshot.WriteFailures),
		zap.Float64("hit_ratio", snapshot.HitRatio))

	if closer, ok := kv.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
