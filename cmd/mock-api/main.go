package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glodam/glodam-mock-api/internal/config"
	"github.com/glodam/glodam-mock-api/internal/fixture"
	"github.com/glodam/glodam-mock-api/internal/handler"
	"github.com/glodam/glodam-mock-api/internal/middleware"
	"github.com/glodam/glodam-mock-api/internal/routes"
	"github.com/glodam/glodam-mock-api/internal/session"
	"github.com/glodam/glodam-mock-api/internal/store"
	pkgjwt "github.com/glodam/glodam-mock-api/pkg/jwt"
	pkglogger "github.com/glodam/glodam-mock-api/pkg/logger"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}

	// 로거 초기화
	pkglogger.InitStructured(env, os.Getenv("LOG_LEVEL"))
	pkglogger.GetLogger().Info().
		Str("env", env).
		Strs("dotenv_files", dotenvFiles).
		Msg("starting glodam-mock-api")

	// 설정 로드
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	// 시드 고정 옵션: MOCK_SEED가 있으면 재현 가능한 픽스처가 된다
	seedValue := cfg.Mock.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}

	// rand.Rand는 동기화되지 않는다. 스토어의 rng는 s.mu 아래에서만 돌지만
	// newSeed는 dev/reset 핸들러가 락 없이 부르므로, 시드 빌더는 자체 뮤텍스로
	// 감싼 별도 소스를 쓴다.
	var seedMu sync.Mutex
	seedRng := rand.New(rand.NewSource(seedValue))
	newSeed := func() fixture.Seed {
		seedMu.Lock()
		defer seedMu.Unlock()
		return fixture.BuildSeed(seedRng, time.Now())
	}

	entityStore := store.New(newSeed(), store.WithRand(rand.New(rand.NewSource(seedValue))))
	sessionFlag := session.NewFlag()
	tokenManager := pkgjwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiresInMinutes)*time.Minute,
	)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS — 프론트엔드 dev 서버 오리진 허용
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORS.AllowOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Middleware
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SimulatedLatency(time.Duration(cfg.Mock.LatencyMs) * time.Millisecond))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "glodam-mock-api",
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(router, routes.Handlers{
		Auth:       handler.NewAuthHandler(sessionFlag, tokenManager),
		Work:       handler.NewWorkHandler(entityStore),
		Lorebook:   handler.NewLorebookHandler(entityStore),
		Manuscript: handler.NewManuscriptHandler(entityStore),
		Proposal:   handler.NewProposalHandler(entityStore),
		Author:     handler.NewAuthorHandler(entityStore),
		Dev:        handler.NewDevHandler(entityStore, newSeed),
	})

	pkglogger.GetLogger().Info().Str("addr", cfg.Addr()).Msg("listening")
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
