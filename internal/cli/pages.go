package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/azmodels/internal/fixture"
	"github.com/example/azmodels/internal/registry"
	"github.com/example/azmodels/pkg/paging"
)

func newPagesCommand(a *app) *cobra.Command {
	var (
		metrics bool
		runID   string
	)

	cmd := &cobra.Command{
		Use:   "pages <name> <fixture>",
		Short: "Follow the continuation tokens of a recorded page sequence",
		Long: `Follow the continuation tokens of a recorded page sequence.

The fixture lists the recorded responses:

  pages:
    - body: {value: [...], nextLink: p2}
    - token: p2
      body: {value: [...]}

The first page is served for the initial request and every other page is
served when the pager asks for its token.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookup(args[0])
			if err != nil {
				return err
			}
			if e.Kind != registry.Page {
				return fmt.Errorf("%s is a %s, not a page envelope", e.Name, e.Kind)
			}

			path := a.config.fixturePath(args[1])
			pages, err := fixture.LoadPages(path)
			if err != nil {
				return err
			}

			opts := []paging.Option{paging.WithLogger(a.logger), paging.WithRunID(runID)}
			var reg *prometheus.Registry
			if metrics {
				reg = prometheus.NewRegistry()
				m, err := paging.NewMetrics(reg)
				if err != nil {
					return err
				}
				opts = append(opts, paging.WithMetrics(m))
			}

			body := func(_ context.Context, token *string) ([]byte, error) {
				return pages.Body(token)
			}
			results, runErr := e.Drive(cmd.Context(), body, opts...)
			if err := printPages(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if reg != nil {
				if err := writeMetrics(cmd.OutOrStdout(), reg); err != nil {
					return err
				}
			}
			if runErr != nil {
				a.logger.Debug("pager stopped", zap.String("entry", e.Name), zap.Error(runErr))
				return fmt.Errorf("page %d (%s): %w", len(results)+1, category(runErr), runErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print the pager metrics after the run")
	cmd.Flags().StringVar(&runID, "run-id", "", "Run identifier attached to log lines (generated when empty)")
	return cmd
}

func printPages(w io.Writer, results []registry.PageResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAGE\tITEMS\tNEXT\tMORE")
	for i, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%q\t%t\n", i+1, r.Items, r.Next, r.More)
	}
	return tw.Flush()
}

func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
