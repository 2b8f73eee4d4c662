package demo

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/errors"
	"github.com/abimaelmartell/moni-dash/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// NewRouter exposes src on GET /metrics and GET /info.
func NewRouter(src *Source, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/metrics", metricsHandler(src))
	r.GET("/info", infoHandler(src))
	return r
}

func metricsHandler(src *Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := api.SortKey(c.DefaultQuery("sortProcessesBy", api.DefaultSortKey.String()))
		if !key.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort parameter"})
			return
		}
		c.JSON(http.StatusOK, src.Metrics(key))
	}
}

func infoHandler(src *Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, src.Info())
	}
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("%s %s %d %s", c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), time.Since(start))
	}
}

// Serve samples src and serves it on addr until ctx is done, then shuts
// the listener down gracefully.
func Serve(ctx context.Context, addr string, src *Source, log logger.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(src, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go src.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info("demo server listening on %s", addr)

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.WrapWithCode(err, errors.ErrTransport,
				"Couldn't start the demo server on "+addr,
				"Pick another address with --addr, e.g. --addr 127.0.0.1:9090")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "Demo server didn't shut down cleanly")
	}
	log.Info("demo server stopped")
	return nil
}
