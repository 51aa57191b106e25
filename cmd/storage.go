package main

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/bookshelf-server/internal/config"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/storage/file"
	"github.com/dtroode/bookshelf-server/internal/storage/memory"
	storage "github.com/dtroode/bookshelf-server/internal/storage/minio"
	"github.com/dtroode/bookshelf-server/internal/storage/postgres"
	"github.com/dtroode/bookshelf-server/internal/storage/sqlite"
)

// openDocumentStore builds the backend selected by STORAGE_MODE. The
// returned func releases its resources.
func openDocumentStore(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.DocumentStore, func(), error) {
	noop := func() {}

	switch cfg.Storage.Mode {
	case config.StorageModeMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewStore(model.Document{}), noop, nil

	case config.StorageModeFile:
		store, err := file.NewStore(ctx, cfg.Storage.FilePath)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open file storage: %w", err)
		}
		return store, noop, nil

	case config.StorageModeMinio:
		minioClient, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create minio client: %w", err)
		}
		store, err := storage.NewClient(ctx, minioClient, cfg.Minio.Bucket, cfg.Minio.ObjectName)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to initialize minio storage: %w", err)
		}
		return store, noop, nil

	case config.StorageModePostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return postgres.NewStore(db), func() { _ = db.Close() }, nil

	case config.StorageModeSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.FilePath)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open sqlite: %w", err)
		}
		return sqlite.NewStore(db), func() { _ = db.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage mode %q", cfg.Storage.Mode)
	}
}
