package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/gustydev/messenger-api/config"
	"github.com/gustydev/messenger-api/internal/blob"
	chatmodel "github.com/gustydev/messenger-api/internal/chat/model"
	chatrepo "github.com/gustydev/messenger-api/internal/chat/repository"
	chatusecase "github.com/gustydev/messenger-api/internal/chat/usecase"
	"github.com/gustydev/messenger-api/internal/consistency"
	"github.com/gustydev/messenger-api/internal/delivery/http_delivery"
	wsdelivery "github.com/gustydev/messenger-api/internal/delivery/websocket"
	msgmodel "github.com/gustydev/messenger-api/internal/message/model"
	msgrepo "github.com/gustydev/messenger-api/internal/message/repository"
	msgusecase "github.com/gustydev/messenger-api/internal/message/usecase"
	"github.com/gustydev/messenger-api/internal/presence"
	usermodel "github.com/gustydev/messenger-api/internal/user/model"
	userrepo "github.com/gustydev/messenger-api/internal/user/repository"
	userusecase "github.com/gustydev/messenger-api/internal/user/usecase"
	"github.com/gustydev/messenger-api/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	db, err := connectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	blobs, err := blob.NewS3Store(cfg.S3)
	if err != nil {
		log.Fatalf("failed to init blob store: %v", err)
	}

	users := userrepo.NewUserRepository(db, *appLogger)
	chats := chatrepo.NewChatRepository(db, *appLogger)
	messages := msgrepo.NewMessageRepository(db, *appLogger)

	engine := consistency.NewEngine(chats, messages, *appLogger)
	pub := presence.NewRedisPublisher(rdb)
	notifier := presence.NewNotifier(users, pub, *appLogger)

	userUC := userusecase.NewUserUsecase(users, engine, pub, blobs, *appLogger, *cfg)
	chatUC := chatusecase.NewChatUsecase(chats, users, engine, *appLogger)
	messageUC := msgusecase.NewMessageUsecase(messages, chats, engine, blobs, pub, *appLogger)

	r := mux.NewRouter()
	handler := http_delivery.NewHandler(userUC, chatUC, messageUC, *appLogger, *cfg)
	handler.Register(r)

	wsHandler := wsdelivery.NewHandler(notifier, *appLogger, *cfg)
	r.HandleFunc("/ws", wsHandler.ServeWS)

	appLogger.Info("server listening", "port", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		log.Fatal(err)
	}
}

func connectDB(cfg *config.Config) (*bun.DB, error) {
	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	// Simplified for brevity, ideally use migrations
	tables := []any{
		(*usermodel.User)(nil),
		(*chatmodel.Chat)(nil),
		(*chatmodel.ChatMember)(nil),
		(*msgmodel.Message)(nil),
		(*msgmodel.MessageRead)(nil),
	}
	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return nil, err
		}
	}

	// Usernames are unique regardless of case; the column's own unique
	// constraint only covers exact matches.
	if _, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_idx ON users (lower(username))`); err != nil {
		return nil, err
	}
	return db, nil
}
