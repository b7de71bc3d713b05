package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forumapi/forum-api/backend/internal/setup"
	mw "github.com/forumapi/forum-api/shared/middleware"
	"github.com/forumapi/forum-api/shared/middleware/metrics"
	"github.com/forumapi/forum-api/shared/utils"
)

// New creates the chi router with every forum route.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(false))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteFail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteFail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)

	r.Route("/threads", func(r chi.Router) {
		r.With(needAuth).Post("/", h.CreateThread)

		r.Route("/{threadId}", func(r chi.Router) {
			r.Get("/", h.GetThread)
			r.With(needAuth).Delete("/", h.DeleteThread)

			r.Group(func(r chi.Router) {
				r.Use(needAuth)
				r.Post("/comments", h.CreateComment)
				r.Delete("/comments/{commentId}", h.DeleteComment)
				r.Put("/comments/{commentId}/likes", h.ToggleCommentLike)
				r.Post("/comments/{commentId}/replies", h.CreateReply)
				r.Delete("/comments/{commentId}/replies/{replyId}", h.DeleteReply)
			})
		})
	})

	return r
}
