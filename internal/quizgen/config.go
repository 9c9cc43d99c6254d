package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated quiz. They execute in order; the first failure stops
	// the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response. A quiz is a
	// passage plus up to 20 questions with explanations, so the budget
	// is generous.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&TypeMixValidator{},
		},
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
