package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/model"
	"github.com/fadilmartias/bizsim/internal/repository"
	"github.com/fadilmartias/bizsim/internal/service"
	"github.com/fadilmartias/bizsim/internal/simulation"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const caseStudyTopK = 2

// CaseStudyExamples finds real-world examples for feedback by embedding the
// decision and searching the stored case studies.
type CaseStudyExamples struct {
	repo     *repository.CaseStudyRepository
	embedder service.Embedder
}

func NewCaseStudyExamples(repo *repository.CaseStudyRepository, embedder service.Embedder) *CaseStudyExamples {
	return &CaseStudyExamples{repo: repo, embedder: embedder}
}

func (e *CaseStudyExamples) Examples(ctx context.Context, scenario simulation.Scenario, option simulation.Option, stage simulation.BusinessStage) ([]simulation.RealWorldExample, error) {
	query := strings.Join([]string{scenario.Title, scenario.Challenge, option.Text}, "\n")
	vector, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed decision: %w", err)
	}

	studies, err := e.repo.Search(ctx, pgvector.NewVector(vector), string(stage), caseStudyTopK)
	if err != nil {
		return nil, fmt.Errorf("search case studies: %w", err)
	}

	examples := make([]simulation.RealWorldExample, 0, len(studies))
	for _, s := range studies {
		examples = append(examples, simulation.RealWorldExample{
			Company:   s.Company,
			Situation: s.Situation,
			Outcome:   s.Outcome,
			Lesson:    s.Lesson,
		})
	}
	return examples, nil
}

// SeedCaseStudies embeds the built-in case studies and stores those not yet
// present. It returns how many were added.
func SeedCaseStudies(ctx context.Context, repo *repository.CaseStudyRepository, embedder service.Embedder) (int, error) {
	added := 0
	for _, cs := range seedCaseStudies {
		_, err := repo.FindByCompany(ctx, cs.Company)
		if err == nil {
			logger.Log.Debug("case study already stored", zap.String("company", cs.Company))
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return added, fmt.Errorf("look up %s: %w", cs.Company, err)
		}

		row := cs
		vector, err := embedder.Embed(ctx, row.EmbeddingText())
		if err != nil {
			return added, fmt.Errorf("embed %s: %w", cs.Company, err)
		}
		row.Embedding = pgvector.NewVector(vector)

		if err := repo.Create(ctx, &row); err != nil {
			return added, fmt.Errorf("store %s: %w", cs.Company, err)
		}
		added++
		logger.Log.Info("case study stored", zap.String("company", cs.Company), zap.String("stage", cs.Stage))
	}
	return added, nil
}

var seedCaseStudies = []model.CaseStudy{
	{
		Company:   "Airbnb",
		Stage:     string(simulation.StageStartup),
		Situation: "Faced regulatory challenges in multiple cities while trying to scale",
		Decision:  "Engaged city governments directly and built compliance tooling for hosts",
		Outcome:   "Developed city-specific compliance strategies and stakeholder engagement",
		Lesson:    "Proactive regulatory engagement is crucial for platform businesses",
	},
	{
		Company:   "Slack",
		Stage:     string(simulation.StageStartup),
		Situation: "Pivoted from gaming company to communication platform during financial crisis",
		Decision:  "Shut down the game and shipped the internal chat tool as the product",
		Outcome:   "Became one of the fastest-growing business applications",
		Lesson:    "Sometimes the best opportunities come from unexpected pivots",
	},
	{
		Company:   "M-Pesa",
		Stage:     string(simulation.StageStartup),
		Situation: "Needed a way to move money for customers without bank accounts",
		Decision:  "Built payments over basic SMS and recruited local shops as cash agents",
		Outcome:   "Reached most adults in Kenya within a few years of launch",
		Lesson:    "Design for the infrastructure your customers already have",
	},
	{
		Company:   "Netflix",
		Stage:     string(simulation.StageGrowth),
		Situation: "Transitioned from DVD-by-mail to streaming while cannibalizing existing business",
		Decision:  "Invested heavily in streaming before the DVD business declined",
		Outcome:   "Became the dominant streaming platform globally",
		Lesson:    "Bold strategic moves sometimes require sacrificing current success for future growth",
	},
	{
		Company:   "Shopify",
		Stage:     string(simulation.StageGrowth),
		Situation: "Scaled platform while maintaining performance and adding new features",
		Decision:  "Kept a single core platform and opened it to third-party apps",
		Outcome:   "Became the leading e-commerce platform for small businesses",
		Lesson:    "Technical excellence and customer focus enable sustainable scaling",
	},
	{
		Company:   "Jumia",
		Stage:     string(simulation.StageGrowth),
		Situation: "Expanded into many African markets at once with thin margins",
		Decision:  "Exited unprofitable countries and cut categories to focus on core markets",
		Outcome:   "Reduced losses and stabilised operations in its remaining markets",
		Lesson:    "Focus beats footprint when capital is scarce",
	},
	{
		Company:   "Microsoft",
		Stage:     string(simulation.StageEstablished),
		Situation: "Core Windows franchise was losing relevance as computing moved to the cloud",
		Decision:  "Reorganised around cloud services and opened products to other platforms",
		Outcome:   "Azure grew into one of the largest cloud businesses",
		Lesson:    "Established companies must be willing to reshape their identity",
	},
	{
		Company:   "Ecobank",
		Stage:     string(simulation.StageEstablished),
		Situation: "Operated across dozens of countries with uneven systems and regulations",
		Decision:  "Standardised on a shared banking platform and a single mobile app",
		Outcome:   "Cut costs and launched pan-African digital payments",
		Lesson:    "Shared platforms let large organisations move as one",
	},
}
