package quizgen

import "testing"

func TestParams_Validate(t *testing.T) {
	valid := Params{
		Difficulty:   "中级 (HSK 3-4)",
		Topic:        "中国茶文化",
		NumQuestions: 5,
		QuestionType: TypeMultipleChoice,
	}

	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"valid", func(p *Params) {}, false},
		{"random topic sentinel", func(p *Params) { p.Topic = TopicRandom }, false},
		{"short answer type", func(p *Params) { p.QuestionType = TypeShortAnswer }, false},
		{"mixed type", func(p *Params) { p.QuestionType = TypeMixed }, false},
		{"single question", func(p *Params) { p.NumQuestions = 1 }, false},
		{"max questions", func(p *Params) { p.NumQuestions = MaxQuestions }, false},
		{"empty difficulty", func(p *Params) { p.Difficulty = "" }, true},
		{"empty topic", func(p *Params) { p.Topic = "" }, true},
		{"zero questions", func(p *Params) { p.NumQuestions = 0 }, true},
		{"negative questions", func(p *Params) { p.NumQuestions = -3 }, true},
		{"too many questions", func(p *Params) { p.NumQuestions = MaxQuestions + 1 }, true},
		{"empty question type", func(p *Params) { p.QuestionType = "" }, true},
		{"unknown question type", func(p *Params) { p.QuestionType = "作文" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultParams_Valid(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("default params should validate: %v", err)
	}
	if p.Topic != TopicRandom {
		t.Fatalf("expected random topic, got %q", p.Topic)
	}
}
