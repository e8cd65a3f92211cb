package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mhalvorsen/cutsheet/pkg/corpus"
	"github.com/mhalvorsen/cutsheet/pkg/egif"
)

// defaultCorpusFile is the starter corpus shipped with the repository.
const defaultCorpusFile = "examples/corpus/classic.toml"

// newCorpusCmd creates the corpus command with its subcommands.
func newCorpusCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Work with corpora of example graphs",
		Long: `Work with TOML-indexed corpora of example graphs.

Examples:
  cutsheet corpus list
  cutsheet corpus show mortal-man
  cutsheet corpus lint --file my-corpus.toml
  cutsheet corpus browse`,
	}

	cmd.PersistentFlags().StringVarP(&file, "file", "f", defaultCorpusFile, "corpus file")

	cmd.AddCommand(corpusListCmd(&file))
	cmd.AddCommand(corpusShowCmd(&file))
	cmd.AddCommand(corpusLintCmd(&file))
	cmd.AddCommand(corpusBrowseCmd(&file))
	return cmd
}

func corpusListCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List corpus entries",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cp, err := corpus.Load(*file)
			if err != nil {
				return err
			}
			if cp.Title != "" {
				fmt.Println(StyleTitle.Render(cp.Title))
			}
			for _, e := range cp.Entries {
				fmt.Println(StyleHighlight.Render(e.Name) + "  " + StyleDim.Render(e.Title))
			}
			return nil
		},
	}
}

func corpusShowCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one corpus entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cp, err := corpus.Load(*file)
			if err != nil {
				return err
			}
			entry, err := cp.Get(args[0])
			if err != nil {
				return err
			}
			g, err := entry.Parse()
			if err != nil {
				return err
			}

			printKeyValue("name", entry.Name)
			printKeyValue("title", entry.Title)
			printKeyValue("egif", egif.Generate(g))
			if entry.Notes != "" {
				printKeyValue("notes", entry.Notes)
			}
			printStats(g.VertexCount(), g.EdgeCount(), g.CutCount())
			return nil
		},
	}
}

func corpusLintCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Parse, validate, and round-trip every corpus entry",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cp, err := corpus.Load(*file)
			if err != nil {
				return err
			}

			spin := newSpinner(c.Context(), fmt.Sprintf("Linting %d entries", len(cp.Entries)))
			spin.Start()
			issues := cp.Lint()

			if len(issues) == 0 {
				spin.StopWithSuccess(fmt.Sprintf("All %d entries are clean", len(cp.Entries)))
				return nil
			}
			spin.StopWithError(fmt.Sprintf("%d of %d entries failed", len(issues), len(cp.Entries)))
			for _, issue := range issues {
				printDetail("%s: %v", issue.Name, issue.Err)
			}
			return fmt.Errorf("corpus lint failed")
		},
	}
}

func corpusBrowseCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse corpus entries interactively",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cp, err := corpus.Load(*file)
			if err != nil {
				return err
			}

			model := newEntryListModel(cp)
			final, err := tea.NewProgram(model, tea.WithContext(c.Context())).Run()
			if err != nil {
				return err
			}

			m, ok := final.(entryListModel)
			if !ok || m.selected == nil {
				return nil
			}

			g, err := m.selected.Parse()
			if err != nil {
				return err
			}
			printKeyValue("name", m.selected.Name)
			printKeyValue("egif", egif.Generate(g))
			printStats(g.VertexCount(), g.EdgeCount(), g.CutCount())
			return nil
		},
	}
}
