package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abimaelmartell/moni-dash/internal/config"
	"github.com/abimaelmartell/moni-dash/internal/errors"
)

// DashFlags holds the flags that tune polling behavior.
type DashFlags struct {
	Interval      string
	Ordering      string
	NoSortRefresh bool
}

var dashFlags DashFlags

// addDashFlags registers --interval, --ordering and --no-sort-refresh on cmd.
func addDashFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dashFlags.Interval, "interval", "", "poll cadence until the server reports one (e.g., 1s, 500ms)")
	cmd.Flags().StringVar(&dashFlags.Ordering, "ordering", "", "overlapping poll policy: last-applied or last-issued")
	cmd.Flags().BoolVar(&dashFlags.NoSortRefresh, "no-sort-refresh", false, "wait for the next tick after changing the sort key")
}

// applyDashFlags copies any dash flags set on cmd into cfg. Commands that
// do not register the flags are left untouched.
func applyDashFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if f := flags.Lookup("interval"); f != nil && f.Changed {
		d, err := parseDuration("interval", dashFlags.Interval)
		if err != nil {
			return err
		}
		cfg.Interval = d
	}
	if f := flags.Lookup("ordering"); f != nil && f.Changed {
		cfg.Ordering = dashFlags.Ordering
	}
	if f := flags.Lookup("no-sort-refresh"); f != nil && f.Changed {
		cfg.RefreshOnSort = !dashFlags.NoSortRefresh
	}
	return nil
}

// parseDuration parses a duration flag value. Returns zero for an empty value.
func parseDuration(name, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid --%s", value, name),
			"Try something like 1s, 2m, or 500ms.")
	}
	return d, nil
}
