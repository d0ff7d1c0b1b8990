package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdgateway/backend/internal/api"
	"github.com/mdgateway/backend/internal/config"
	"github.com/mdgateway/backend/internal/convert"
	"github.com/mdgateway/backend/internal/staging"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Get the executable's directory for config resolution
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	configPath := filepath.Join(exeDir, "mdgateway.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	// Initialize the staging area for uploaded payloads
	stager, err := staging.NewStager(cfg.GetScratchDir())
	if err != nil {
		fmt.Printf("Failed to initialize staging: %v\n", err)
		os.Exit(1)
	}

	// One engine for the whole process; every request shares it
	engine := convert.NewCLIEngine(cfg.Conversion.BinaryPath)
	if !engine.Available() {
		fmt.Printf("Warning: conversion tool %q not found on PATH; conversions will fail\n", cfg.Conversion.BinaryPath)
	}

	handlers := api.NewHandlers(&api.Dependencies{
		Engine:  engine,
		Stager:  stager,
		Version: Version,
	})

	e := echo.New()
	e.HideBanner = true

	api.SetupMiddleware(e)

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Advanced.EnableRequestLogging {
				return true
			}
			return c.Request().URL.Path == "/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize:         1024 * 4,
		DisablePrintStack: false,
		LogLevel:          0,
	}))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
		Skipper: func(c echo.Context) bool {
			// Conversions may legitimately run long
			return strings.HasPrefix(c.Request().URL.Path, "/convert")
		},
		ErrorMessage: "Request timeout",
	}))

	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	api.RegisterRoutes(e, handlers)

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	fmt.Printf("\n")
	fmt.Printf("Markdown Gateway %s (built %s)\n", Version, BuildTime)
	fmt.Printf("  Config:      %s\n", configPath)
	fmt.Printf("  Listen:      http://%s\n", cfg.GetServerAddr())
	fmt.Printf("  Scratch dir: %s\n", cfg.GetScratchDir())
	fmt.Printf("  Converter:   %s\n", cfg.Conversion.BinaryPath)
	fmt.Printf("\n")

	e.Logger.Fatal(e.StartServer(s))
}
