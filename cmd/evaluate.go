package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vzahanych/wind-activity-app/internal/activity"
	"github.com/vzahanych/wind-activity-app/internal/config"
	"github.com/vzahanych/wind-activity-app/internal/dashboard"
	"github.com/vzahanych/wind-activity-app/internal/server/utils"
	"github.com/vzahanych/wind-activity-app/internal/units"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func newEvaluateCmd() *cobra.Command {
	var (
		inputPath string
		unit      string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate rules against forecasts from a file",
		Long: `Read rules and location forecasts from a YAML or JSON file (or "-" for stdin)
and print the resulting dashboard as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, inputPath, unit)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "input file with rules and locations (\"-\" reads stdin)")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "wind unit for the output: ms or knots (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runEvaluate(cmd *cobra.Command, inputPath, unit string) error {
	cfg := config.GetConfig()

	req, err := readRequest(cmd.InOrStdin(), inputPath)
	if err != nil {
		return err
	}

	if unit == "" && req.WindUnit == "" {
		unit = cfg.Dashboard.WindUnit
	}
	if unit != "" {
		req.WindUnit, err = units.ParseWindUnit(unit)
		if err != nil {
			return err
		}
	}

	if fields := utils.ValidateStruct(&req); len(fields) > 0 {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			msgs = append(msgs, f.Message)
		}
		return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
	}

	grace := time.Duration(cfg.Dashboard.StaleGraceMinutes) * time.Minute
	builder := dashboard.NewBuilder(activity.NewMatcher(cfg.Matcher.DisplayHours...), log.Logger, tele, dashboard.Options{
		Concurrency: cfg.Dashboard.Concurrency,
		Stale:       dashboard.PastHours(time.Now(), grace),
	})

	dash, err := builder.Build(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	log.Debug("Evaluated input",
		zap.String("file", inputPath),
		zap.Int("rules", len(req.Rules)),
		zap.Int("days", len(dash.Days)))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dash)
}

// readRequest decodes a dashboard request. JSON input is accepted as YAML.
func readRequest(stdin io.Reader, path string) (dashboard.Request, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return dashboard.Request{}, fmt.Errorf("failed to read input: %w", err)
	}

	var req dashboard.Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return dashboard.Request{}, fmt.Errorf("failed to parse input %s: %w", path, err)
	}
	return req, nil
}
