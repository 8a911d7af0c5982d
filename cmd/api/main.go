package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/shewell/maternity-api/internal/config"
	appointmenthandler "github.com/shewell/maternity-api/internal/handler/appointment"
	authhandler "github.com/shewell/maternity-api/internal/handler/auth"
	chathandler "github.com/shewell/maternity-api/internal/handler/chat"
	doctorhandler "github.com/shewell/maternity-api/internal/handler/doctor"
	healthhandler "github.com/shewell/maternity-api/internal/handler/health"
	profilehandler "github.com/shewell/maternity-api/internal/handler/profile"
	reminderhandler "github.com/shewell/maternity-api/internal/handler/reminder"
	"github.com/shewell/maternity-api/internal/middleware"
	"github.com/shewell/maternity-api/internal/repository/postgres"
	redisrepo "github.com/shewell/maternity-api/internal/repository/redis"
	"github.com/shewell/maternity-api/internal/router"
	appointmentservice "github.com/shewell/maternity-api/internal/service/appointment"
	authservice "github.com/shewell/maternity-api/internal/service/auth"
	chatservice "github.com/shewell/maternity-api/internal/service/chat"
	doctorservice "github.com/shewell/maternity-api/internal/service/doctor"
	"github.com/shewell/maternity-api/internal/service/notification"
	profileservice "github.com/shewell/maternity-api/internal/service/profile"
	"github.com/shewell/maternity-api/pkg/auth"
	"github.com/shewell/maternity-api/pkg/genai"
	"github.com/shewell/maternity-api/pkg/logger"
	"github.com/shewell/maternity-api/pkg/sms"
	"github.com/shewell/maternity-api/pkg/translate"
)

func main() {
	log := logger.NewLogger(nil)
	zl := log.Zerolog()

	cfg, err := config.LoadConfig()
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to load configuration")
	}

	gin.SetMode(gin.ReleaseMode)
	middleware.RegisterValidators()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		zl.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		zl.Fatal().Err(err).Msg("failed to connect to redis")
	}

	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	chatHistoryRepo := redisrepo.NewChatHistoryRepository(redisClient)

	if err := doctorservice.Seed(context.Background(), doctorRepo); err != nil {
		zl.Fatal().Err(err).Msg("failed to seed doctor directory")
	}

	genaiClient, err := genai.NewClient(cfg.GenAI)
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to initialize generative client")
	}

	var smsSender sms.Sender
	if cfg.Twilio.Configured() {
		smsSender = sms.NewTwilioSender(cfg.Twilio)
	} else {
		zl.Warn().Msg("twilio credentials not configured, SMS notifications disabled")
	}

	var translator translate.Translator = translate.Noop{}
	if cfg.Translation.Enabled {
		translator = translate.NewGoogleTranslator()
	}

	tokens := auth.NewJWTService(cfg.Session.Secret, cfg.Session.Lifetime)

	notifSvc := notification.NewService(smsSender, zl)
	authSvc := authservice.NewService(patientRepo, doctorRepo, profileRepo, tokens, notifSvc)
	appointmentSvc := appointmentservice.NewService(appointmentRepo, doctorRepo, patientRepo, notifSvc)
	doctorSvc := doctorservice.NewService(doctorRepo)
	profileSvc := profileservice.NewService(profileRepo)
	chatSvc := chatservice.NewService(genaiClient, translator, chatHistoryRepo, profileRepo, zl)

	authMW := middleware.NewAuthMiddleware(tokens)

	routerCfg := router.Config{
		CORSConfig: middleware.DefaultCORSConfig(),
		Metrics:    cfg.Monitoring.PrometheusEnabled,
	}
	if len(cfg.CORS.AllowedOrigins) > 0 {
		routerCfg.CORSConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	if cfg.RateLimit.Enabled {
		routerCfg.RateLimit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		routerCfg.RateBurst = cfg.RateLimit.Burst
	}

	healthHandler := healthhandler.NewHandler()
	r := router.New(
		routerCfg,
		authMW,
		healthHandler.RegisterRoutes,
		authhandler.NewHandler(authSvc, int(cfg.Session.Lifetime.Seconds())),
		appointmenthandler.NewHandler(appointmentSvc),
		doctorhandler.NewHandler(doctorSvc),
		profilehandler.NewHandler(profileSvc),
		reminderhandler.NewHandler(profileSvc),
		chathandler.NewHandler(chatSvc),
	)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		zl.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Fatal().Err(err).Msg("forced shutdown")
	}
	zl.Info().Msg("server stopped")
}
