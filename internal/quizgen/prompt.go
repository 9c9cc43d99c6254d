package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `你是一位经验丰富的中文老师，负责为学习中文的学生出阅读理解测验。
短文和问题必须完全使用简体中文，语言难度与指定的级别相符。`

// buildUserMessage constructs the generation request from Params.
func buildUserMessage(p Params) string {
	var b strings.Builder

	b.WriteString("请根据以下要求生成一个中文阅读理解测验：\n")
	fmt.Fprintf(&b, "1. **主题**: %q (如果主题是 %q, 请你选择一个适合该难度等级的常见话题。)\n", p.Topic, TopicRandom)
	fmt.Fprintf(&b, "2. **难度**: %q\n", p.Difficulty)
	fmt.Fprintf(&b, "3. **问题数量**: %d\n", p.NumQuestions)
	fmt.Fprintf(&b, "4. **题目类型**: %q (选择题, 简答题, 或 混合)\n", p.QuestionType)

	b.WriteString("\n要求：\n")
	b.WriteString("- 生成一篇与主题和难度相符的中文短文。文章需要结构清晰，根据内容自然分段，并使用换行符 (\\n) 分隔段落，以便阅读。\n")
	fmt.Fprintf(&b, "- 根据短文内容和指定的题目类型出 %d 道题。\n", p.NumQuestions)
	b.WriteString("- 如果是选择题 ('mc')，必须提供 'options' (四个选项) 和 'correctAnswerIndex'。\n")
	b.WriteString("- 如果是简答题 ('sa')，必须提供 'correctAnswerText'。\n")
	b.WriteString("- 必须为每一道题提供详细的 'explanation'，解释为什么答案是正确的，可以结合原文内容进行说明。\n")
	b.WriteString("- 确保问题和选项的语言难度与所选级别匹配。\n")
	b.WriteString("- 严格按照提供的JSON schema格式返回结果。")

	return b.String()
}
