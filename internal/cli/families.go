package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/azmodels/internal/registry"
)

func newFamiliesCommand(a *app) *cobra.Command {
	var (
		review  bool
		service string
	)

	cmd := &cobra.Command{
		Use:   "families",
		Short: "List the registered families, page envelopes and models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := registry.All()
			if review {
				entries = registry.NeedsReview()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				if service != "" && e.Service != service {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Kind, describe(e))
			}
			a.logger.Debug("listed entries", zap.Int("count", len(entries)))
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&review, "review", false, "Only list pages whose empty-token behaviour needs review")
	cmd.Flags().StringVar(&service, "service", "", "Only list entries of this service (purview, synapse, storage)")
	return cmd
}

func describe(e registry.Entry) string {
	switch {
	case e.Family():
		return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Tags, ", "))
	case e.Kind == registry.Page:
		if e.Policy.NeedsReview() {
			return fmt.Sprintf("%s (review: %s)", e.Policy.Empty, e.Policy.Review)
		}
		return e.Policy.Empty.String()
	default:
		return ""
	}
}
