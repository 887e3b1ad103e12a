package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/octobees/product-advisor/internal/config"
	"github.com/octobees/product-advisor/internal/handler"
	middlewarepkg "github.com/octobees/product-advisor/internal/middleware"
	"github.com/octobees/product-advisor/internal/router"
	"github.com/octobees/product-advisor/internal/toolclient"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Run the HTTP front-end",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		command, err := serverCommand(cfg)
		if err != nil {
			return err
		}

		connectCtx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		session, err := toolclient.ConnectWithRetry(connectCtx, command, "advisor-web", version, connectAttempts, connectDelay)
		if err != nil {
			return err
		}
		defer session.Close()

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		e.Use(middlewarepkg.RequestID())
		e.Use(middlewarepkg.Logging())
		e.Use(echoMiddleware.Recover())

		router.Register(e, cfg, router.Handlers{
			Search: handler.NewSearchHandler(session),
		})

		serverErr := make(chan error, 1)
		go func() {
			serverErr <- e.Start(":" + cfg.Port)
		}()
		log.Printf("web front-end listening port=%s", cfg.Port)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			log.Printf("received signal %s, shutting down", sig)
		case err := <-serverErr:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("graceful shutdown failed: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(webCmd)
}
