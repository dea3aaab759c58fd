package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/petitions/internal/feed"
	"github.com/idilsaglam/petitions/internal/filter"
	"github.com/idilsaglam/petitions/internal/model"
	"github.com/idilsaglam/petitions/internal/store/jsonstore"
	"github.com/idilsaglam/petitions/internal/tui"
	"github.com/idilsaglam/petitions/internal/ui"
	"github.com/idilsaglam/petitions/internal/version"
)

// -------------- browse ----------------

func (a *app) browse(ctx context.Context, mode feed.Mode, keyword string) error {
	m := tui.New(a.feedClient(), tui.Options{
		Mode:    mode,
		Keyword: keyword,
		Logger:  a.log,
		Context: ctx,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(a.stdout))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// -------------- ls ----------------

type listOptions struct {
	mode    feed.Mode
	keyword string
	format  string
	out     string
	file    string
}

func (a *app) listCommand() *cobra.Command {
	var (
		o   listOptions
		top bool
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print petitions without the interactive browser",
		Example: `  petitions ls --filter tax
  petitions ls --top --format json --out top.json
  petitions ls --file top.json --format titles`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o.mode = modeFor(top)
			return a.list(cmd.Context(), o)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&top, "top", "t", false, "only petitions above the signature floor")
	f.StringVarP(&o.keyword, "filter", "f", "", "keep petitions whose title or body contains this keyword")
	f.StringVar(&o.format, "format", "table", "output format: table, json, titles")
	f.StringVarP(&o.out, "out", "o", "", "also save the listed petitions to this JSON file")
	f.StringVar(&o.file, "file", "", "read petitions from a saved JSON file instead of the feed")
	return cmd
}

func (a *app) list(ctx context.Context, o listOptions) error {
	switch o.format {
	case "table", "json", "titles":
	default:
		return usageError{fmt.Errorf("unknown format %q (want table, json or titles)", o.format)}
	}

	var (
		petitions []model.Petition
		err       error
	)
	if o.file != "" {
		petitions, err = jsonstore.Load(o.file)
	} else {
		petitions, err = a.feedClient().Load(ctx, o.mode)
	}
	if err != nil {
		a.log.Debug("load failed", "error", err)
		return fmt.Errorf("load: %w", err)
	}

	visible := filter.Apply(petitions, o.keyword)

	if o.out != "" {
		if err := jsonstore.Save(o.out, visible); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		ui.OK(a.stderr, fmt.Sprintf("saved %d petitions to %s", len(visible), o.out))
	}

	switch o.format {
	case "json":
		b, err := feed.Encode(visible)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, string(b))
	case "titles":
		for _, p := range visible {
			fmt.Fprintln(a.stdout, p.Title)
		}
	default:
		a.printTable(o, len(petitions), visible)
	}
	return nil
}

func (a *app) printTable(o listOptions, total int, visible []model.Petition) {
	th := ui.Current()

	tabName := "All"
	if o.mode == feed.ModeTopRated {
		tabName = "Top Rated"
	}
	filterLabel := "Filter"
	if o.keyword != "" {
		filterLabel = fmt.Sprintf("Filter (current: %s)", o.keyword)
	}
	header := fmt.Sprintf("%s  %s  %s",
		th.Title.Render(ui.AppTitle),
		th.Accent.Render(tabName),
		th.Muted.Render(fmt.Sprintf("%s · %d of %d", filterLabel, len(visible), total)),
	)

	top := 0
	for _, p := range visible {
		if p.SignatureCount > top {
			top = p.SignatureCount
		}
	}

	lines := []string{header, ""}
	if len(visible) == 0 {
		lines = append(lines, th.Muted.Render("no petitions"))
	}
	for i, p := range visible {
		idx := th.Muted.Render(fmt.Sprintf("%3d.", i+1))
		lines = append(lines,
			fmt.Sprintf("%s %s", idx, ansi.Truncate(p.Title, 80, "…")),
			"     "+th.Pending.Render(ui.SignatureBar(p.SignatureCount, top, 20)),
		)
	}
	lines = append(lines, "", th.Muted.Render("Tip: browse interactively with `petitions`"))
	ui.Panel(a.stdout, lines)
}

// -------------- credits / version / config ----------------

func (a *app) creditsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "credits",
		Short: "Show where the petitions come from",
		Args:  noArgs,
		Run: func(_ *cobra.Command, _ []string) {
			ui.Panel(a.stdout, []string{ui.Current().Title.Render(ui.CreditsTitle), "", ui.CreditsMessage})
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(a.stdout, version.Full())
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dump",
			Short: "Print the resolved configuration as YAML",
			Args:  noArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				out, err := yaml.Marshal(a.cfg)
				if err != nil {
					return fmt.Errorf("marshal config: %w", err)
				}
				_, err = a.stdout.Write(out)
				return err
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate configuration and exit",
			Args:  noArgs,
			Run: func(_ *cobra.Command, _ []string) {
				ui.OK(a.stdout, "configuration is valid")
			},
		},
	)
	return cmd
}
