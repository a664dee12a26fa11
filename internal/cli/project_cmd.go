package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/researchdesk/internal/cli/formatter"
	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/filter"
	"github.com/alexanderramin/researchdesk/internal/presenter"
	"github.com/spf13/cobra"
)

type listOptions struct {
	query  string
	status string
	area   string
}

func (o listOptions) criteria() (filter.Criteria, error) {
	c := filter.Criteria{Query: o.query, Area: o.area}
	if o.status != "" {
		s := domain.ProjectStatus(o.status)
		if !s.IsValid() {
			return c, fmt.Errorf("unknown status %q", o.status)
		}
		c.Status = s
	}
	return c, nil
}

func newListCmd(a *App) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printList(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "text to look for in title, description or owner")
	cmd.Flags().StringVar(&opts.status, "status", "", "planned, in_progress, completed or cancelled")
	cmd.Flags().StringVar(&opts.area, "area", "", "exact research area")
	return cmd
}

func printList(cmd *cobra.Command, a *App, opts listOptions) error {
	c, err := opts.criteria()
	if err != nil {
		return err
	}
	projects, err := a.Projects.Filter(cmd.Context(), c)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectTable(presenter.BuildList(projects)))
	return nil
}

func newShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			p, err := a.Projects.GetByID(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("project %d: %w", id, err)
			}
			detail := presenter.BuildDetail(p)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("", formatter.FormatDetail(detail, 76)))
			return nil
		},
	}
}

func newStatsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count projects by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			s := presenter.BuildSummary(all)
			rows := [][]string{
				{presenter.StatusLabel(domain.StatusInProgress), strconv.Itoa(s.InProgress)},
				{presenter.StatusLabel(domain.StatusCompleted), strconv.Itoa(s.Completed)},
				{presenter.StatusLabel(domain.StatusPlanned), strconv.Itoa(s.Planned)},
				{presenter.StatusLabel(domain.StatusCancelled), strconv.Itoa(s.Cancelled)},
				{formatter.Bold("Total"), formatter.Bold(strconv.Itoa(s.Total))},
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"STATUS", "PROJECTS"}, rows))
			return nil
		},
	}
}
