package server

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"playtube/internal/blobstore"
	"playtube/internal/config"
	"playtube/internal/database"
	"playtube/internal/denylist"
	"playtube/internal/handlers"
	"playtube/internal/middleware"
	"playtube/pkg/auth"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Tokens *auth.TokenManager
	Config *config.Config
}

// Handlers — набор обработчиков для таблицы маршрутов.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Video        *handlers.VideoHandler
	Comment      *handlers.CommentHandler
	Tweet        *handlers.TweetHandler
	Like         *handlers.LikeHandler
	Subscription *handlers.SubscriptionHandler
	Playlist     *handlers.PlaylistHandler
	Dashboard    *handlers.DashboardHandler
	Health       *handlers.HealthcheckHandler
}

func New(cfg *config.Config) *Server {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("postgres connect failed: %v", err)
	}

	var deny denylist.Denylist
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb := redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("redis connect failed: %v", err)
		}
		deny = denylist.NewRedis(rdb)
	} else {
		logrus.Warn("REDIS_URL not set, using in-memory token denylist")
		deny = denylist.NewMemory()
	}

	var blobs blobstore.Store
	if cfg.S3Bucket != "" {
		blobs, err = blobstore.NewS3(cfg.AWSRegion, cfg.S3Bucket)
		if err != nil {
			logrus.Fatalf("s3 init failed: %v", err)
		}
	} else {
		logrus.Warn("S3_BUCKET not set, using fake blob store")
		blobs = blobstore.NewFake()
	}

	tokens := auth.NewTokenManager(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	h := &Handlers{
		Auth:         handlers.NewAuthHandler(db, tokens, deny, blobs, cfg),
		User:         handlers.NewUserHandler(db, blobs, cfg),
		Video:        handlers.NewVideoHandler(db, blobs),
		Comment:      handlers.NewCommentHandler(db),
		Tweet:        handlers.NewTweetHandler(db),
		Like:         handlers.NewLikeHandler(db),
		Subscription: handlers.NewSubscriptionHandler(db),
		Playlist:     handlers.NewPlaylistHandler(db),
		Dashboard:    handlers.NewDashboardHandler(db),
		Health:       handlers.NewHealthcheckHandler(db),
	}

	router := gin.Default()
	APIEndpoints(router, middleware.Auth(tokens, db, deny), h)

	return &Server{
		Router: router,
		DB:     db,
		Tokens: tokens,
		Config: cfg,
	}
}

func (s *Server) Run() {
	logrus.Infof("server starting on port %s", s.Config.Port)
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		logrus.Fatalf("server run error: %v", err)
	}
}
