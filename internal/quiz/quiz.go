// Package quiz builds short multiple-choice quizzes for a learner's interest
// area.
package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/service"
	"go.uber.org/zap"
)

const (
	DefaultInterestArea = "Business & Management"
	DefaultDifficulty   = "beginner"

	questionCount = 3
	temperature   = 0.7
	maxTokens     = 800
)

var ErrInterestAreaRequired = errors.New("interest area is required")

var quizSchema = service.MustSchema("quiz", `{
  "type": "array",
  "minItems": 3,
  "maxItems": 3,
  "items": {
    "type": "object",
    "required": ["question", "options", "correctAnswer"],
    "properties": {
      "question": {"type": "string", "minLength": 1},
      "options": {"type": "array", "minItems": 4, "maxItems": 4, "items": {"type": "string"}},
      "correctAnswer": {"type": "integer", "minimum": 0, "maximum": 3},
      "explanation": {"type": "string"}
    }
  }
}`)

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type Quiz struct {
	Questions []Question `json:"questions"`
	Fallback  bool       `json:"fallback,omitempty"`
}

type Generator struct {
	provider    service.Provider
	callTimeout time.Duration
}

// NewGenerator returns a Generator. With a nil provider every quiz comes from
// the fallback bank.
func NewGenerator(provider service.Provider, callTimeout time.Duration) *Generator {
	return &Generator{provider: provider, callTimeout: callTimeout}
}

// Generate asks the model for three questions on interestArea. When the
// model is missing, fails, or replies with anything but three well-formed
// questions, the bank for the area is returned with Fallback set.
func (g *Generator) Generate(ctx context.Context, interestArea, difficulty string) (*Quiz, error) {
	interestArea = strings.TrimSpace(interestArea)
	if interestArea == "" {
		return nil, ErrInterestAreaRequired
	}
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	questions, err := g.modelQuestions(ctx, interestArea, difficulty)
	if err == nil {
		return &Quiz{Questions: questions}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	logger.Log.Warn("quiz generation failed, using fallback questions",
		zap.String("interest_area", interestArea), zap.Error(err))
	return &Quiz{Questions: Fallback(interestArea), Fallback: true}, nil
}

func (g *Generator) modelQuestions(ctx context.Context, interestArea, difficulty string) ([]Question, error) {
	if g.provider == nil {
		return nil, service.ErrNoProvider
	}

	callCtx := ctx
	if g.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.callTimeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(callCtx, service.Request{
		System:      systemPrompt,
		Prompt:      prompt(interestArea, difficulty),
		Schema:      quizSchema,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal([]byte(resp.Content), &questions); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	return questions, nil
}

const systemPrompt = "You are an educational content creator specializing in entrepreneurship education for African secondary students. Create engaging, culturally relevant quiz questions."

func prompt(interestArea, difficulty string) string {
	return fmt.Sprintf(`Create %d multiple-choice questions for Liberian secondary students about "%s".

Requirements:
- Difficulty level: %s
- Questions should be relevant to Liberian context when possible
- Each question should have 4 options (A, B, C, D)
- Include brief explanations for correct answers
- Make questions practical and engaging for teenagers
- Focus on foundational concepts, not advanced theory

Format your response as a JSON array with this structure:
[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": 0,
    "explanation": "Brief explanation of why this is correct"
  }
]

Only return the JSON array, no other text.`, questionCount, interestArea, difficulty)
}
