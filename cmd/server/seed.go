package main

import (
	"fmt"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/repository"
	"github.com/fadilmartias/bizsim/internal/service"
	"github.com/fadilmartias/bizsim/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCaseStudiesCmd = &cobra.Command{
	Use:   "seed-case-studies",
	Short: "Embed the built-in case studies and store them for feedback examples",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := ConnectDB()
		if err != nil {
			return err
		}
		if err := Migrate(db); err != nil {
			return err
		}

		embedder, err := service.NewEmbedder(ctx, config.LoadGeminiConfig(), config.LoadLLMConfig())
		if err != nil {
			return fmt.Errorf("embeddings need GEMINI_API_KEY: %w", err)
		}

		added, err := usecase.SeedCaseStudies(ctx, repository.NewCaseStudyRepository(db), embedder)
		if err != nil {
			return err
		}
		logger.Log.Info("case studies seeded", zap.Int("added", added))
		return nil
	},
}
