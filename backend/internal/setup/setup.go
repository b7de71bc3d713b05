package setup

import (
	"context"

	"github.com/forumapi/forum-api/backend/internal/handler"
	"github.com/forumapi/forum-api/backend/internal/service"
	"github.com/forumapi/forum-api/backend/internal/storage/pg"
	"github.com/forumapi/forum-api/shared/config"
	"github.com/forumapi/forum-api/shared/jwt"
	mw "github.com/forumapi/forum-api/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Jwt            jwt.JwtService
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg.Private.Pg)
	if err != nil {
		return nil, err
	}

	jwt := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwt)
	thread := service.NewThread(storage, storage, storage, storage)
	comment := service.NewComment(storage, storage)
	reply := service.NewReply(storage, storage, storage)
	like := service.NewCommentLike(storage, storage, storage)

	h := handler.New(auth, thread, comment, reply, like, cfg, storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(jwt),
		Jwt:            jwt,
		Config:         cfg,
	}, nil
}
