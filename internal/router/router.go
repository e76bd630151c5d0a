package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/middlewares"
	"github.com/saulo-duarte/quizgen-lambda/internal/quiz"
)

type RouterConfig struct {
	DB          *gorm.DB
	CORSOrigins []string
	QuizHandler *quiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", health(cfg.DB))

	r.Mount("/", quiz.Routes(cfg.QuizHandler))
	return r
}

// health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} config.ErrorResponse
// @Router       /healthz [get]
func health(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(r.Context())
			}
			if err != nil {
				config.WithContext(r.Context()).WithError(err).Error("Health check failed")
				config.Error(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
