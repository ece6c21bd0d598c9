package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/config"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/db"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/routes"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	var log *zap.Logger
	if cfg.IsProduction() {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("logger: " + err.Error())
	}
	defer log.Sync()

	database, err := db.Open(cfg.DbDsn)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.Migrate(database); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	var bucket *storage.Bucket
	if cfg.GcsBucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		bucket, err = storage.NewBucket(ctx, cfg.GcsBucket, cfg.GcsCredentialsFile)
		cancel()
		if err != nil {
			log.Warn("storage disabled", zap.Error(err))
			bucket = nil
		} else {
			defer bucket.Close()
		}
	} else {
		log.Warn("GCS_BUCKET not set, uploads disabled")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, database, cfg, log, bucket)

	log.Info("server starting", zap.String("addr", cfg.Addr))
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
