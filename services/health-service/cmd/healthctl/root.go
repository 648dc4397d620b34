package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/hieple7985/venture-guard-ai/pkg/observability"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/dto"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/usecase"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/service"
)

type cli struct {
	stdout   io.Writer
	stderr   io.Writer
	logLevel string
	analyze  *usecase.AnalyzeBusinessHealth
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "healthctl",
		Short:         "Score business health from monthly revenue and expenses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger := observability.InitLogger(observability.LogConfig{
				Level:   c.logLevel,
				Format:  "text",
				Service: "healthctl",
				Output:  c.stderr,
			})
			c.analyze = usecase.NewAnalyzeBusinessHealth(nil, nil, service.NewRiskEngine(), logger)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newAnalyzeCmd(c), newDemoCmd(c))
	return root
}

func (c *cli) run(ctx context.Context, req dto.AnalyzeRequest) error {
	resp, err := c.analyze.Execute(ctx, req)
	if err != nil {
		return err
	}
	return c.print(resp)
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
