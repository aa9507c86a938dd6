package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"folio/internal/catalog"
	"folio/internal/changelog"
	"folio/internal/config"
)

type rootOptions struct {
	configPath string
	route      string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "folio",
		Short: "folio - a developer portfolio for the terminal",
		Long: `folio shows a profile, a project carousel and per-project detail pages in
the terminal.

Run without arguments to start the interactive interface.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/folio/config.toml)")
	root.Flags().StringVarP(&opts.route, "route", "r", "/", "path to open first, e.g. /projects/<slug> or /easter")
	root.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	root.AddCommand(
		newProjectsCmd(opts),
		newChangelogCmd(),
		newVersionCmd(),
	)
	return root
}

func newProjectsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the projects in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigService(opts.configPath).Load()
			if err != nil {
				return err
			}
			cat, err := catalog.LoadFile(cfg.Catalog.Path)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSLUG\tTITLE")
			for _, p := range cat.Projects {
				title := p.Title
				if p.IsPlaceholder() {
					title += " (coming soon)"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Slug, title)
			}
			return w.Flush()
		},
	}
}

func newChangelogCmd() *cobra.Command {
	var width int
	var raw bool

	cmd := &cobra.Command{
		Use:   "changelog",
		Short: "Print the hidden changelog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := changelog.Parse(changelog.Embedded(), version)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Version %s\n\n", report.Version)
			if raw {
				_, err := fmt.Fprintln(out, report.Body)
				return err
			}

			rendered, err := changelog.RenderStyle(report, width, outputStyle(out))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "wrap width")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the folio version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
		},
	}
}

// outputStyle picks a colored style for terminals and a plain one for pipes
// and files
func outputStyle(w io.Writer) changelog.Style {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return changelog.StylePlain
	}
	return changelog.StyleFor(lipgloss.HasDarkBackground())
}
