// Package router assembles the gin engine: middleware chain and routes.
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "blog_backend/internal/feature/auth/transport/handler"
	categoryhandler "blog_backend/internal/feature/category/transport/handler"
	posthandler "blog_backend/internal/feature/post/transport/handler"
	taghandler "blog_backend/internal/feature/tag/transport/handler"
	"blog_backend/internal/platform/http/handler"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/ratelimit"
	"blog_backend/internal/platform/security"
)

// Handlers groups the HTTP handlers of every feature.
type Handlers struct {
	Auth     *authhandler.AuthHandler
	User     *authhandler.UserHandler
	Category *categoryhandler.CategoryHandler
	Tag      *taghandler.TagHandler
	Post     *posthandler.PostHandler
	Health   *handler.HealthHandler
}

// Options configures the cross-cutting middleware.
type Options struct {
	AllowedOrigins []string
	// TrustedProxies are passed to gin; nil trusts no proxy, so the login
	// throttle keys on the peer address rather than X-Forwarded-For.
	TrustedProxies []string
	Authenticator  jwtmw.Authenticator
	LoginLimiter   ratelimit.Limiter
	Policy         security.Policy
}

// NewCORSConfig returns the CORS policy for the given browser origins.
func NewCORSConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
}

// NewRouter wires middleware and routes.
// Order: logger/recovery → CORS → authentication (optional identity) →
// authorization policy → handler.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.Default()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		slog.Warn("invalid trusted proxies; trusting none", "error", err, "proxies", opts.TrustedProxies)
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(cors.New(NewCORSConfig(opts.AllowedOrigins)))
	r.Use(jwtmw.Authenticate(opts.Authenticator))
	r.Use(security.Authorize(opts.Policy))

	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	auth := r.Group("/auth")
	{
		// ログイン（JWT 発行）。総当たり対策としてIP単位で制限
		auth.POST("/login", ratelimit.Middleware(opts.LoginLimiter, ratelimit.ClientIPKey), h.Auth.Login)
		auth.POST("/signup", h.Auth.Signup)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.POST("", h.Category.Create)
		categories.DELETE("/:id", h.Category.Delete)
	}

	r.GET("/tags", h.Tag.List)

	posts := r.Group("/posts")
	{
		posts.GET("", h.Post.List)
		posts.GET("/drafts", h.Post.Drafts)
		posts.GET("/:id", h.Post.Get)
		posts.POST("", h.Post.Create)
	}

	users := r.Group("/users")
	{
		users.GET("/me", h.User.Me)
		users.GET("/:id", h.User.GetByID)
	}

	return r
}
