package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ramiyazhr/kampusskill-app2/internal/config"
	"github.com/ramiyazhr/kampusskill-app2/internal/logger"
	"github.com/ramiyazhr/kampusskill-app2/internal/models"
	"github.com/ramiyazhr/kampusskill-app2/internal/notify"
	"github.com/ramiyazhr/kampusskill-app2/internal/services/auth"
	"github.com/ramiyazhr/kampusskill-app2/internal/services/catalog"
	"github.com/ramiyazhr/kampusskill-app2/internal/services/export"
	"github.com/ramiyazhr/kampusskill-app2/internal/services/favorites"
	"github.com/ramiyazhr/kampusskill-app2/internal/services/listing"
	"github.com/ramiyazhr/kampusskill-app2/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	zl, closeLog := logger.New(cfg.LogLevel, cfg.LogJSON, cfg.LogFile, cfg.LogMaxMB)
	defer closeLog()

	ctx := context.Background()

	var kv storage.KV
	switch cfg.StoreDriver {
	case "redis":
		rs := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rs.Ping(ctx); err != nil {
			log.Fatal("Redis TIDAK connect:", err)
		}
		zl.Info("store redis aktif", zap.String("addr", cfg.RedisAddr))
		kv = rs
	default:
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatal(err)
		}
		zl.Info("store file aktif", zap.String("dir", cfg.DataDir))
		kv = fs
	}

	data := storage.NewDataset(kv, zl)
	if err := data.Load(ctx); err != nil {
		log.Fatal(err)
	}

	center := notify.NewCenter()
	authSvc := auth.NewService(data, storage.NewMemoryStore())
	listingSvc := listing.NewService(data, zl)
	listingSvc.Notifier = center
	catalogSvc := catalog.NewService(data)
	favSvc := favorites.NewService(kv)
	exportSvc := export.NewService(data)

	users, err := authSvc.Users(ctx)
	if err != nil {
		log.Fatal(err)
	}
	active, err := catalogSvc.Browse(ctx, catalog.Query{})
	if err != nil {
		log.Fatal(err)
	}
	flagged, err := catalogSvc.Flagged(ctx)
	if err != nil {
		log.Fatal(err)
	}
	favs, err := favSvc.List(ctx)
	if err != nil {
		log.Fatal(err)
	}

	zl.Info("kampusskill engine siap",
		zap.Int("users", len(users)),
		zap.Int("listing_aktif", len(active)),
		zap.Int("listing_flagged", len(flagged)),
		zap.Int("favorit", len(favs)))

	if cfg.ExportPath != "" {
		admin := firstAdmin(users)
		if admin == nil {
			zl.Warn("export dilewati: tidak ada akun admin")
		} else if err := exportSvc.WriteFile(ctx, *admin, cfg.ExportPath); err != nil {
			zl.Error("export gagal", zap.Error(err))
		} else {
			zl.Info("export data selesai", zap.String("path", cfg.ExportPath))
		}
	}

	for _, m := range center.List() {
		zl.Info("notifikasi", zap.Int64("id", m.ID), zap.String("kind", string(m.Kind)), zap.String("text", m.Text))
	}
}

func firstAdmin(users []models.User) *models.User {
	for i := range users {
		if users[i].IsAdmin() {
			return &users[i]
		}
	}
	return nil
}
