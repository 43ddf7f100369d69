package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/SpeedyGonzale5/game-captcha/internal/config"
	"github.com/SpeedyGonzale5/game-captcha/internal/events"
	"github.com/SpeedyGonzale5/game-captcha/internal/game"
	"github.com/SpeedyGonzale5/game-captcha/internal/handlers"
	"github.com/SpeedyGonzale5/game-captcha/internal/models"
	"github.com/SpeedyGonzale5/game-captcha/internal/utils"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
}

// Setup builds the gin engine with all middleware and API routes.
func Setup(log *zap.Logger, catalog *models.PromptCatalog, store *game.Store, ring *events.Ring) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secret := config.Conf.Server.SessionSecret
	if secret == "" {
		// Ephemeral secret: fine for a single instance, cookies won't
		// survive a restart.
		generated, err := utils.GenerateSecureToken(32)
		if err != nil {
			log.Fatal("Failed to generate session secret", zap.Error(err))
		}
		secret = generated
	}

	cookieStore := cookie.NewStore([]byte(secret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   3600,
	})
	router.Use(sessions.Sessions("captcha_session", cookieStore))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	sessionHandler := handlers.NewSessionHandler(log, store, catalog)
	verifyHandler := handlers.NewVerifyHandler(log, store, ring)
	analyticsHandler := handlers.NewAnalyticsHandler(log, ring)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 10,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/session", limiter, sessionHandler.Create)
		api.GET("/prompts", sessionHandler.RandomPrompt)
		api.POST("/verify", limiter, verifyHandler.Verify)
		api.POST("/analytics", analyticsHandler.SaveEvent)
		api.GET("/analytics", analyticsHandler.QueryEvents)
	}

	return router
}
