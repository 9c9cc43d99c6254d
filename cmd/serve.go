package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/liuyang/duwen/internal/llm"
	"github.com/liuyang/duwen/internal/quizgen"
	"github.com/liuyang/duwen/internal/requestlog"
	"github.com/liuyang/duwen/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz generation HTTP service",
	Long: `Start the HTTP service that web and terminal frontends call to
generate quizzes. Model credentials stay on this process; clients only
see the /api/quiz endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		ctx := context.Background()

		var reqLog llm.RequestLog
		dbPath, err := resolveDBPath(cmd)
		if err == nil {
			store, openErr := requestlog.Open(dbPath)
			if openErr == nil {
				defer store.Close()
				reqLog = requestlog.NewRecorder(store)
			} else {
				log.Printf("request log unavailable: %v", openErr)
			}
		}

		provider, err := llm.NewProviderFromEnv(ctx, reqLog)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		cfg := server.ConfigFromEnv()

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           server.New(gen, cfg),
			ReadHeaderTimeout: 10 * time.Second,
		}

		shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Printf("listening on :%s", cfg.Port)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-shutdownCtx.Done():
			log.Println("shutting down")
			timeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(timeout)
		}
	},
}
