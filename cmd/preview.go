package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/liuyang/duwen/internal/llm"
	"github.com/liuyang/duwen/internal/quiz"
	"github.com/liuyang/duwen/internal/quizgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate one quiz and answer it in the terminal (no TUI)",
	Long: `Generate a quiz with the given parameters and answer it interactively
on stdin/stdout.

This is a stateless developer tool — useful for evaluating passage and
question quality at each difficulty level.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("difficulty", quizgen.DefaultDifficulty, "Difficulty level, e.g. \"中级 (HSK 3-4)\"")
	previewCmd.Flags().String("topic", quizgen.TopicRandom, "Passage topic")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().String("type", quizgen.TypeMultipleChoice, "Question type: 选择题, 简答题, or 混合")
}

func runPreview(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	difficulty, _ := cmd.Flags().GetString("difficulty")
	topic, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")
	qtype, _ := cmd.Flags().GetString("type")

	params := quizgen.Params{
		Difficulty:   difficulty,
		Topic:        topic,
		NumQuestions: count,
		QuestionType: qtype,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	// No request log — preview is stateless.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())

	fmt.Printf("Generating: %s · %s · %d 题 (%s)\n\n", params.Difficulty, params.Topic, params.NumQuestions, params.QuestionType)

	q, err := gen.Generate(ctx, params)
	if err != nil {
		return fmt.Errorf("generate quiz: %w", err)
	}

	fmt.Println("── 短文 ──")
	fmt.Println(q.Passage)
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	var correct, totalMC int

	for i, question := range q.Questions {
		fmt.Printf("── 第 %d/%d 题 ──\n", i+1, len(q.Questions))
		fmt.Println(question.QuestionText)

		if question.Type == quiz.TypeMultipleChoice {
			totalMC++
			for j, opt := range question.Options {
				fmt.Printf("  %d) %s\n", j+1, opt)
			}

			fmt.Print("\n你的选择 (1-4): ")
			if !scanner.Scan() {
				fmt.Println("\n(input closed)")
				break
			}
			answer := strings.TrimSpace(scanner.Text())
			chosen, err := strconv.Atoi(answer)
			if err != nil || chosen < 1 || chosen > len(question.Options) {
				fmt.Println("(skipped)")
				fmt.Println()
				continue
			}

			if question.CorrectAnswerIndex != nil && chosen-1 == *question.CorrectAnswerIndex {
				correct++
				fmt.Println("\033[32m✓ 正确！\033[0m")
			} else if question.CorrectAnswerIndex != nil {
				fmt.Printf("\033[31m✗ 错了。\033[0m正确答案: %s\n", question.Options[*question.CorrectAnswerIndex])
			}
		} else {
			fmt.Print("\n你的回答: ")
			if !scanner.Scan() {
				fmt.Println("\n(input closed)")
				break
			}
			fmt.Printf("参考答案: %s\n", question.CorrectAnswerText)
		}

		if question.Explanation != "" {
			fmt.Printf("解析: %s\n", question.Explanation)
		}
		fmt.Println()
	}

	if totalMC > 0 {
		fmt.Printf("── 选择题得分: %d/%d ──\n", correct, totalMC)
	}
	return nil
}
