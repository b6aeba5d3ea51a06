package server

import (
	"Recycle/config"
	"Recycle/dao/cache"
	"Recycle/middleware"
	"Recycle/pkg/log"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
	DB     *gorm.DB
}

func getLocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		// 排除回环地址
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}
	return "", errors.New("no ip address found")
}

// serverID 形如 192.168.1.10:8080，仅用于日志
func serverID(port int) string {
	ip, err := getLocalIP()
	if err != nil {
		ip, _ = os.Hostname()
	}
	return fmt.Sprintf("%s:%d", ip, port)
}

func NewGinEngine(h *Handlers, conf *config.Config, sessions *cache.SessionStorage) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.GinZap(), gin.Recovery(), middleware.PrometheusMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authed := middleware.Auth([]byte(conf.Jwt.Secret), sessions)
	machine := middleware.Machine(conf.Machine)

	api := r.Group("/api")
	h.Auth.RegisterRouter(api, authed)
	h.Point.RegisterRouter(api, authed, machine)
	h.History.RegisterRouter(api, authed)
	h.Machine.RegisterRouter(api, machine)
	h.Scan.RegisterRouter(api, authed)
	h.Pricing.RegisterRouter(api)
	return r
}

// NewHTTPHandler 在 gin 外层套上 CORS 和链路追踪
func NewHTTPHandler(engine *gin.Engine) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.MachineKeyHeader},
		AllowCredentials: false,
	})
	return c.Handler(otelhttp.NewHandler(engine, "recycle-api"))
}

func Run(ctx *cli.Context, app *AppProvider) error {
	eg, groupCtx := errgroup.WithContext(ctx.Context)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

	sid := serverID(app.Config.Server.Http)
	log.L.Info("server starting", zap.String("serverId", sid),
		zap.Int("port", app.Config.Server.Http),
		zap.String("env", app.Config.App.Env),
	)

	return run(c, eg, groupCtx, app, sid)
}

func run(c chan os.Signal, eg *errgroup.Group, ctx context.Context, app *AppProvider, sid string) error {
	serv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.Server.Http),
		Handler:           NewHTTPHandler(app.Engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		defer func() {
			log.L.Info("server stopping", zap.String("serverId", sid))

			timeCtx, timeCancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Info("server stopping", zap.String("serverId", sid), zap.Error(err))
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	waitErr := eg.Wait()
	if errors.Is(waitErr, context.Canceled) {
		waitErr = nil
	}
	if waitErr != nil {
		log.L.Error("server exited", zap.String("serverId", sid), zap.Error(waitErr))
	}

	if sqlDB, err := app.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.L.Info("server stopped", zap.String("serverId", sid))
	return waitErr
}
