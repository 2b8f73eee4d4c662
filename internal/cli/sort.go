package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/errors"
	"github.com/abimaelmartell/moni-dash/internal/prefs"
	"github.com/abimaelmartell/moni-dash/internal/ui"
)

var sortCmd = &cobra.Command{
	Use:   "sort [cpu|memory]",
	Short: "Show or change the saved process sort key",
	Long: `Show or change the process sort key the dashboard starts with.

With an argument the key is saved. Without one, an interactive terminal
gets a picker and anything else gets the current key printed.

Examples:
  moni-dash sort
  moni-dash sort memory`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{api.SortByCPU.String(), api.SortByMemory.String()},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store := prefs.NewFileStore(cfg.PrefsPath)

		var choice string
		if len(args) == 1 {
			choice = args[0]
		} else if term.IsTerminal(int(os.Stdin.Fd())) {
			choice, err = pickSortKey(store)
			if err != nil {
				return err
			}
		}
		return sortCommand(os.Stdout, store, choice)
	},
}

// sortCommand prints the stored key when choice is empty, otherwise
// validates and saves it.
func sortCommand(w io.Writer, store prefs.Store, choice string) error {
	if choice == "" {
		key, err := prefs.LoadSortKey(store)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrPrefs,
				"Couldn't read the saved sort key",
				"Check that the preferences file is readable.")
		}
		fmt.Fprintln(w, key)
		return nil
	}

	key := api.SortKey(choice)
	if !key.Valid() {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a sort key", choice),
			"Use cpu or memory.")
	}
	if err := prefs.SaveSortKey(store, key); err != nil {
		return errors.WrapWithCode(err, errors.ErrPrefs,
			"Couldn't save the sort key",
			"Check that the preferences directory is writable.")
	}
	fmt.Fprintf(w, "%s Processes will be sorted by %s\n", ui.SymbolSuccess, key)
	return nil
}

// pickSortKey asks for a key, preselecting the stored one.
func pickSortKey(store prefs.Store) (string, error) {
	current, _ := prefs.LoadSortKey(store)
	choice := current.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sort processes by").
				Options(
					huh.NewOption("CPU usage", api.SortByCPU.String()),
					huh.NewOption("Memory usage", api.SortByMemory.String()),
				).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't get your selection",
			"Try again or use: moni-dash sort <cpu|memory>")
	}
	return choice, nil
}
