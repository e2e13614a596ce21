package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/bizsim/internal/repository"
	"github.com/fadilmartias/bizsim/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	calls int
	err   error
}

func (s *stubEmbedder) Embed(context.Context, string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func TestSeedCaseStudiesSkipsStoredCompanies(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCaseStudyRepository(testDB(t))
	embedder := &stubEmbedder{}

	added, err := SeedCaseStudies(ctx, repo, embedder)
	require.NoError(t, err)
	assert.Equal(t, len(seedCaseStudies), added)
	assert.Equal(t, len(seedCaseStudies), embedder.calls)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(seedCaseStudies)), count)

	added, err = SeedCaseStudies(ctx, repo, embedder)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, len(seedCaseStudies), embedder.calls, "stored companies are not embedded again")

	stored, err := repo.FindByCompany(ctx, "M-Pesa")
	require.NoError(t, err)
	assert.Equal(t, string(simulation.StageStartup), stored.Stage)
}

func TestSeedCaseStudiesEmbedFailure(t *testing.T) {
	repo := repository.NewCaseStudyRepository(testDB(t))

	added, err := SeedCaseStudies(context.Background(), repo, &stubEmbedder{err: errors.New("quota exceeded")})
	require.Error(t, err)
	assert.Zero(t, added)
	assert.Contains(t, err.Error(), "embed Airbnb")
}

func TestCaseStudyExamplesEmbedFailure(t *testing.T) {
	examples := NewCaseStudyExamples(repository.NewCaseStudyRepository(testDB(t)), &stubEmbedder{err: errors.New("down")})

	_, err := examples.Examples(context.Background(), simulation.Scenario{Title: "Cash Crunch"}, simulation.Option{Text: "Cut costs"}, simulation.StageStartup)
	assert.ErrorContains(t, err, "embed decision")
}

func TestSeedCaseStudiesCoverEveryStage(t *testing.T) {
	stages := map[string]int{}
	for _, cs := range seedCaseStudies {
		stages[cs.Stage]++
		assert.NotEmpty(t, cs.Lesson, cs.Company)
	}
	for _, stage := range []simulation.BusinessStage{simulation.StageStartup, simulation.StageGrowth, simulation.StageEstablished} {
		assert.GreaterOrEqual(t, stages[string(stage)], 2, stage)
	}
}
