package main

import (
	"github.com/spf13/cobra"

	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/usecase"
)

func newDemoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Analyze the built-in sample business",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context(), usecase.DemoRequest())
		},
	}
}
