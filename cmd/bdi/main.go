// Command bdi runs a Belief-Desire-Intention agent backed by an LLM, either
// as an interactive shell, a scripted demo or an HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/Harshitk-cp/bdi/internal/config"
	"github.com/Harshitk-cp/bdi/internal/domain"
	"github.com/Harshitk-cp/bdi/internal/llm"
	"github.com/Harshitk-cp/bdi/internal/service"
	"github.com/Harshitk-cp/bdi/internal/shell"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "bdi",
		Short: "Run a Belief-Desire-Intention agent backed by an LLM",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := os.Setenv("BDI_ENV", envFile); err != nil {
					return err
				}
			}
			return config.Load()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env", "", "env file to load (overrides BDI_ENV)")

	shellCmd := newShellCmd()
	root.AddCommand(shellCmd, newServeCmd(), newDemoCmd(), newVersionCmd())

	// Bare `bdi` starts the interactive session.
	root.RunE = shellCmd.RunE
	root.Flags().AddFlagSet(shellCmd.Flags())

	return root
}

// newLogger builds a production logger writing to stderr at LOG_LEVEL.
func newLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(config.LogLevel())
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func newReasoningClient(logger *zap.Logger) (domain.ReasoningClient, error) {
	provider := config.LLMProvider()
	client, err := llm.NewClient(provider, llm.Options{
		APIKey:      config.LLMAPIKey(),
		Model:       config.LLMModel(),
		Temperature: config.LLMTemperature(),
		BaseURL:     config.LLMBaseURL(),
		Timeout:     config.LLMTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("init reasoning client: %w", err)
	}
	logger.Info("LLM client initialized", zap.String("provider", provider), zap.String("model", config.LLMModel()))
	return client, nil
}

// newTaskAgent builds the seeded task management agent used by the shell and
// the demo.
func newTaskAgent(name string, logger *zap.Logger) (*service.Agent, error) {
	client, err := newReasoningClient(logger)
	if err != nil {
		return nil, err
	}

	agent := service.NewAgent(name, client, logger)
	prompt := config.SystemPrompt()
	if prompt == "" {
		prompt = shell.TaskPrompt
	}
	agent.SetSystemPrompt(prompt)
	shell.Seed(agent)
	return agent, nil
}
