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

func newShellCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session with the agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if name == "" {
				name = config.AgentName()
			}
			agent, err := newTaskAgent(name, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return shell.New(agent, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "agent name (default AGENT_NAME or TaskBot)")
	return cmd
}
