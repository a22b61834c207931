package main

import (
	"BistroBoss/config"
	"BistroBoss/jwt"
	"BistroBoss/logging"
	"BistroBoss/payment"
	"BistroBoss/routers"
	"BistroBoss/store"
	"BistroBoss/store/memstore"
	"BistroBoss/store/mongostore"
	"BistroBoss/store/sqlstore"
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	os.Exit(start("config/config.yaml"))
}

// 啟動服務並回傳結束碼，回傳前先寫出logger的緩衝
func start(configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 1
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return 1
	}
	return 0
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			logger.Warn("close storage", zap.Error(err))
		}
	}()

	var tokenOpts []jwt.Option
	rdb, err := config.SetupRedisConnection(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
		tokenOpts = append(tokenOpts, jwt.WithRevoker(jwt.NewRedisRevoker(rdb)))
		logger.Info("token revocation enabled", zap.String("redis", cfg.Redis.Addr))
	} else {
		logger.Info("redis not configured, logout will not revoke tokens")
	}
	tokens := jwt.NewService(cfg.Token.Secret, cfg.Token.ExpiresIn, tokenOpts...)

	if cfg.Payment.SecretKey == "" {
		logger.Warn("payment secret key not set, payment intents will fail")
	}
	payments := payment.NewStripeBridge(cfg.Payment.SecretKey)

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routers.SetupRouters(st, tokens, payments, logger)
	if router == nil {
		return errors.New("setup routers failed")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Bistro boss is listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// 依設定連接資料庫，連線在程式結束前保持開啟
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (*store.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMySQL:
		db, err := config.SetupMySQLConnection(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		logger.Info("connected to MySQL", zap.String("database", cfg.Database.Database))
		return sqlstore.New(db), nil

	case config.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
		return memstore.New(), nil

	default:
		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		db, err := config.SetupMongoConnection(connectCtx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		if err := mongostore.EnsureIndexes(connectCtx, db); err != nil {
			return nil, err
		}
		logger.Info("Pinged your deployment. You successfully connected to MongoDB!",
			zap.String("database", db.Name()))
		return mongostore.New(db), nil
	}
}
