package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/liuyang/duwen/internal/app"
	"github.com/liuyang/duwen/internal/client"
	"github.com/liuyang/duwen/internal/llm"
	"github.com/liuyang/duwen/internal/quiz"
	"github.com/liuyang/duwen/internal/quizgen"
	"github.com/liuyang/duwen/internal/requestlog"
)

// runApp builds a generator and launches the TUI. The generator is
// either the HTTP client (DUWEN_SERVICE_URL set) or an in-process
// model call; without credentials the app still starts on the sample
// quiz and generation reports a configuration error.
func runApp(cmd *cobra.Command) error {
	_ = godotenv.Load()

	if url := os.Getenv("DUWEN_SERVICE_URL"); url != "" {
		return app.Run(client.New(url))
	}

	ctx := context.Background()

	var log llm.RequestLog
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		store, openErr := requestlog.Open(dbPath)
		if openErr == nil {
			defer store.Close()
			log = requestlog.NewRecorder(store)
		} else {
			fmt.Fprintln(os.Stderr, "Request log unavailable:", openErr)
		}
	}

	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz generation will be unavailable; the sample quiz still works.")
		return app.Run(unavailableGenerator{err: err})
	}

	return app.Run(quizgen.New(provider, quizgen.DefaultConfig()))
}

// unavailableGenerator fails every request with a setup hint, so the
// TUI can run without credentials.
type unavailableGenerator struct {
	err error
}

func (g unavailableGenerator) Generate(context.Context, quizgen.Params) (*quiz.Quiz, error) {
	return nil, fmt.Errorf("生成试题失败: 未配置模型提供方 (%w)。请设置 DUWEN_LLM_PROVIDER 和对应的 API key。", g.err)
}
