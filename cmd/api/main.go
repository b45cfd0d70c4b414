package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/ewilliams-labs/moodsnap/internal/adapters/gemini"
	"github.com/ewilliams-labs/moodsnap/internal/adapters/ollama"
	"github.com/ewilliams-labs/moodsnap/internal/adapters/openai"
	"github.com/ewilliams-labs/moodsnap/internal/adapters/rest"
	"github.com/ewilliams-labs/moodsnap/internal/config"
	"github.com/ewilliams-labs/moodsnap/internal/core/ports"
	"github.com/ewilliams-labs/moodsnap/internal/core/presets"
	"github.com/ewilliams-labs/moodsnap/internal/core/services"
	"github.com/ewilliams-labs/moodsnap/internal/worker"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	// 2. Driven adapter: the model provider
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("FATAL: failed to initialize %s generator: %v", cfg.Provider, err)
	}

	pool := worker.NewPool(gen, cfg.Queue)
	pool.Start(cfg.Workers)
	defer pool.Stop()

	// 3. Core
	gateway := services.NewGateway(pool)
	resolver := presets.NewResolver(presets.Theme{
		Primary: cfg.ThemePrimary,
		Accent:  cfg.ThemeAccent,
	})

	// 4. Driving adapter
	handler := rest.NewHandler(gateway, resolver)

	// 5. Start the Server
	log.Println("------------------------------------------------")
	log.Printf("📸 MoodSnap API is running on %s (provider: %s)", cfg.Addr, cfg.Provider)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}

func newGenerator(ctx context.Context, cfg config.Config) (ports.MoodGenerator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		oc := openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}
		if cfg.UsesOAuth() {
			oc.OAuth = &clientcredentials.Config{
				ClientID:     cfg.OAuthClientID,
				ClientSecret: cfg.OAuthClientSecret,
				TokenURL:     cfg.OAuthTokenURL,
			}
		}
		return openai.NewClient(ctx, oc), nil
	case config.ProviderGemini:
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.Model, &http.Client{Timeout: cfg.Timeout})
	default:
		return ollama.NewClient(cfg.OllamaHost, cfg.Model, cfg.Timeout), nil
	}
}
