package main

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kahvecikaan/product-manager/internal/console"
	"github.com/kahvecikaan/product-manager/internal/domain"
	"github.com/kahvecikaan/product-manager/internal/menu"
	"github.com/kahvecikaan/product-manager/internal/service"
	httpTransport "github.com/kahvecikaan/product-manager/internal/transport/http"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	baseURL = env.String("BASE_URL", false,
		"https://localhost:7000/", "Base address of the product catalog API")
	logLevel = env.String("LOG_LEVEL", false,
		"error", "Log output level [trace, debug, info, warn, error, off]")
	tlsSkipVerify = env.Bool("TLS_SKIP_VERIFY", false,
		false, "Accept self-signed certificates from the catalog")
	pause = env.Duration("PAUSE", false,
		2*time.Second, "How long result messages stay on screen")
)

func main() {
	// a .env file is optional
	_ = godotenv.Load()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "product-manager",
		Level:  hclog.LevelFromString("error"),
		Output: os.Stderr,
	})

	if err := env.Parse(); err != nil {
		logger.Error("Unable to parse environment", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(hclog.LevelFromString(*logLevel))

	// Set up the single HTTP client shared by every screen
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if *tlsSkipVerify {
		logger.Warn("TLS certificate verification is disabled")
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	client, err := httpTransport.NewClient(
		*baseURL,
		&http.Client{Transport: transport},
		logger.Named("catalog-client"),
	)
	if err != nil {
		logger.Error("Unable to create catalog client", "error", err)
		os.Exit(1)
	}

	cs := service.NewCatalogService(
		client,
		domain.NewValidation(),
		logger.Named("catalog-service"),
	)

	term := console.NewTerminal(os.Stdin, os.Stdout, *pause)

	m := menu.New(term, cs, logger.Named("menu"))

	err = m.Run(context.Background())

	term.ShowCursor(true)
	client.Close()

	switch {
	case err == nil, errors.Is(err, io.EOF):
		os.Exit(0)
	case errors.Is(err, console.ErrInterrupted):
		os.Exit(130)
	default:
		logger.Error("Unable to read from the console", "error", err)
		os.Exit(1)
	}
}
