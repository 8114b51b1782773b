package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Harshitk-cp/bdi/internal/config"
	"github.com/Harshitk-cp/bdi/internal/shell"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the scripted example scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			agent, err := newTaskAgent(config.AgentName(), logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return shell.RunDemo(ctx, agent, shell.Scenarios, cmd.OutOrStdout())
		},
	}
}
