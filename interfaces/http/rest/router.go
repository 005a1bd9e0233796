package rest

import (
	"net/http"
	"os"

	"textanalysis/interfaces/http/rest/handlers"
	"textanalysis/interfaces/http/rest/middleware"
	apperrors "textanalysis/pkg/errors"
	"textanalysis/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Options controls the optional parts of the router
type Options struct {
	EnableCORS     bool
	AllowedOrigins []string
	EnableMetrics  bool
	StaticDir      string
}

// Router creates and configures the HTTP router
type Router struct {
	text         *handlers.TextHandler
	sentiment    *handlers.SentimentHandler
	translation  *handlers.TranslationHandler
	errorHandler *apperrors.ErrorHandler
	metrics      *observability.Collector
	opts         Options
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	text *handlers.TextHandler,
	sentiment *handlers.SentimentHandler,
	translation *handlers.TranslationHandler,
	errorHandler *apperrors.ErrorHandler,
	metrics *observability.Collector,
	opts Options,
	logger *zap.Logger,
) *Router {
	return &Router{
		text:         text,
		sentiment:    sentiment,
		translation:  translation,
		errorHandler: errorHandler,
		metrics:      metrics,
		opts:         opts,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))
	router.Use(rt.errorHandler.Middleware)

	// CORS configuration
	if rt.opts.EnableCORS {
		origins := rt.opts.AllowedOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.NotFound(rt.notFound)
	router.MethodNotAllowed(rt.methodNotAllowed)

	// Health check
	router.Get("/health", handlers.Health)
	router.Get("/ready", handlers.Ready)

	if rt.opts.EnableMetrics && rt.metrics != nil {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	router.Route("/analyze", func(r chi.Router) {
		r.Post("/stats", rt.text.Stats)
		r.Post("/sentiment", rt.sentiment.Analyze)
	})
	router.Post("/transform", rt.text.Transform)
	router.Post("/validate", rt.text.Validate)
	router.Post("/translate", rt.translation.Translate)

	// Static assets, read-only
	if dir := rt.opts.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			files := http.FileServer(http.Dir(dir))
			router.Get("/*", files.ServeHTTP)
			router.Head("/*", files.ServeHTTP)
			rt.logger.Info("Serving static files", zap.String("dir", dir))
		}
	}

	return router
}

func (rt *Router) notFound(w http.ResponseWriter, r *http.Request) {
	rt.errorHandler.Handle(w, r, &apperrors.AppError{
		Type:       apperrors.ErrorTypeValidation,
		Message:    "Not found",
		HTTPStatus: http.StatusNotFound,
	})
}

func (rt *Router) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	rt.errorHandler.Handle(w, r, &apperrors.AppError{
		Type:       apperrors.ErrorTypeValidation,
		Message:    "Method not allowed",
		HTTPStatus: http.StatusMethodNotAllowed,
	})
}
