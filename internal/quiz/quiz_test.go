package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/bizsim/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelQuiz = `[
  {"question": "What is a market stall's biggest daily cost?", "options": ["Rent", "Stock", "Transport", "Phone credit"], "correctAnswer": 1, "explanation": "Stock is bought every day."},
  {"question": "What is revenue?", "options": ["Profit", "Money from sales", "Savings", "Loans"], "correctAnswer": 1, "explanation": "Revenue is money from sales."},
  {"question": "Who is a stakeholder?", "options": ["Anyone affected", "Only owners", "Only staff", "Nobody"], "correctAnswer": 0, "explanation": "Stakeholders are affected by the business."}
]`

func TestGenerateRequiresInterestArea(t *testing.T) {
	g := NewGenerator(nil, 0)
	_, err := g.Generate(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrInterestAreaRequired)
}

func TestGenerateFromModel(t *testing.T) {
	mock := service.NewMockProvider(service.MockResponse{Content: "```json\n" + modelQuiz + "\n```"})
	g := NewGenerator(mock, 0)

	q, err := g.Generate(context.Background(), "Finance & Economics", "")
	require.NoError(t, err)
	assert.False(t, q.Fallback)
	require.Len(t, q.Questions, 3)
	assert.Equal(t, "Money from sales", q.Questions[1].Options[q.Questions[1].CorrectAnswer])

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Prompt, `about "Finance & Economics"`)
	assert.Contains(t, mock.Calls[0].Prompt, "Difficulty level: beginner")
	assert.Equal(t, 800, mock.Calls[0].MaxTokens)
	assert.InDelta(t, 0.7, mock.Calls[0].Temperature, 1e-9)
}

func TestGenerateFallsBack(t *testing.T) {
	cases := []struct {
		name  string
		reply service.MockResponse
	}{
		{"two questions", service.MockResponse{Content: `[{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": 0}, {"question": "Q2?", "options": ["a","b","c","d"], "correctAnswer": 1}]`}},
		{"answer out of range", service.MockResponse{Content: `[
			{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": 4},
			{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": 0},
			{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": 0}]`}},
		{"not json", service.MockResponse{Content: "Here are some questions for you!"}},
		{"provider error", service.MockResponse{Err: errors.New("quota exceeded")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(service.NewMockProvider(tc.reply), 0)
			q, err := g.Generate(context.Background(), "Law & Ethics", "intermediate")
			require.NoError(t, err)
			assert.True(t, q.Fallback)
			assert.Equal(t, bank["Law & Ethics"], q.Questions)
		})
	}
}

func TestGenerateWithoutProvider(t *testing.T) {
	q, err := NewGenerator(nil, 0).Generate(context.Background(), "Space Tourism", "")
	require.NoError(t, err)
	assert.True(t, q.Fallback)
	assert.Equal(t, bank[DefaultInterestArea], q.Questions)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGenerator(service.NewMockProvider(), 0).Generate(ctx, "Law & Ethics", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBankShape(t *testing.T) {
	areas := InterestAreas()
	assert.Len(t, areas, 10)
	assert.Contains(t, areas, DefaultInterestArea)
	for _, area := range areas {
		qs := Fallback(area)
		require.Len(t, qs, 3, area)
		for _, q := range qs {
			assert.Len(t, q.Options, 4, q.Question)
			assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
			assert.Less(t, q.CorrectAnswer, 4)
			assert.NotEmpty(t, q.Explanation)
		}
	}
}
