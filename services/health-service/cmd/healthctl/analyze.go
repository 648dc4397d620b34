package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hieple7985/venture-guard-ai/pkg/money"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/dto"
)

type analyzeCmd struct {
	*cli
	customers int
	churn     float64
	age       int
	employees int
	industry  string
}

func newAnalyzeCmd(c *cli) *cobra.Command {
	ac := &analyzeCmd{cli: c}
	cmd := &cobra.Command{
		Use:   "analyze <file.csv>",
		Short: "Analyze a CSV with revenue and expenses columns, oldest month first",
		Args:  cobra.ExactArgs(1),
		RunE:  ac.run,
	}

	cmd.Flags().IntVar(&ac.customers, "customers", 0, "Current number of customers")
	cmd.Flags().Float64Var(&ac.churn, "churn", 0, "Monthly customer churn rate in [0,1]")
	cmd.Flags().IntVar(&ac.age, "age", 0, "Business age in months")
	cmd.Flags().IntVar(&ac.employees, "employees", 0, "Number of employees")
	cmd.Flags().StringVar(&ac.industry, "industry", "", "Industry label")

	return cmd
}

func (ac *analyzeCmd) run(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	series, err := money.ReadMonthlyCSV(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	slog.Debug("read monthly series", "file", args[0], "months", len(series.Revenue))

	req := dto.AnalyzeRequest{
		MonthlyRevenue:  series.Revenue,
		MonthlyExpenses: series.Expenses,
		Industry:        ac.industry,
	}

	// Only flags given on the command line count as provided metadata.
	flags := cmd.Flags()
	if flags.Changed("customers") {
		req.CustomerCount = &ac.customers
	}
	if flags.Changed("churn") {
		req.CustomerChurnRate = &ac.churn
	}
	if flags.Changed("age") {
		req.BusinessAgeMonths = &ac.age
	}
	if flags.Changed("employees") {
		req.EmployeeCount = &ac.employees
	}

	return ac.cli.run(cmd.Context(), req)
}
