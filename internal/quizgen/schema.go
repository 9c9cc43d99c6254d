package quizgen

import "github.com/liuyang/duwen/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
// The Chinese property descriptions steer the model toward Chinese
// content without extra prompt text.
var QuizSchema = &llm.Schema{
	Name:        "reading-quiz",
	Description: "一个中文阅读理解测验，包含短文和问题列表",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"passage": map[string]any{
				"type":        "string",
				"description": "一段与主题相关的中文短文。",
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "一个问题对象的列表。",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"mc", "sa"},
							"description": "问题类型, 'mc' 代表选择题, 'sa' 代表简答题。",
						},
						"questionText": map[string]any{
							"type":        "string",
							"description": "问题的文本。",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "一个包含四个字符串选项的数组 (仅用于 'mc' 类型)。",
							"items": map[string]any{
								"type": "string",
							},
						},
						"correctAnswerIndex": map[string]any{
							"type":        "integer",
							"description": "正确答案在 'options' 数组中的索引 (0-3) (仅用于 'mc' 类型)。",
						},
						"correctAnswerText": map[string]any{
							"type":        "string",
							"description": "简答题的参考答案 (仅用于 'sa' 类型)。",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "对正确答案的详细解释，说明为什么它是正确的，可以引用原文。",
						},
					},
					"required": []any{"type", "questionText", "explanation"},
				},
			},
		},
		"required": []any{"passage", "questions"},
	},
}
