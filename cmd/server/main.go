package main

import (
	"log"
	"os"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "bizsim",
	Short:        "Business simulation training server",
	Long:         "bizsim serves AI-generated business scenarios, scores learner decisions and tracks skill progress.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(config.LoadLogConfig(), config.LoadAppConfig())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCaseStudiesCmd)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
