package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/config"
	"github.com/abimaelmartell/moni-dash/internal/tunnel"
	"github.com/abimaelmartell/moni-dash/internal/ui"
)

// newFetcher builds the API client for cfg. When an SSH host is configured
// the client is routed through a tunnel, which the returned cleanup closes.
// quiet suppresses the connect spinner.
func newFetcher(ctx context.Context, cfg *config.Config, quiet bool) (*api.Client, func(), error) {
	opts := []api.Option{api.WithTimeout(cfg.RequestTimeout)}
	cleanup := func() {}

	if cfg.SSH.Host != "" {
		var spin *ui.Spinner
		if !quiet {
			spin = ui.NewSpinner(fmt.Sprintf("Connecting to %s", cfg.SSH.Host))
			spin.SetOutput(func(s string) { fmt.Fprint(os.Stderr, s) })
			spin.Start()
		}

		t, err := tunnel.Dial(ctx, cfg.SSH.Host, cfg.SSH.Timeout)
		if err != nil {
			if spin != nil {
				spin.Fail()
			}
			return nil, cleanup, err
		}
		if spin != nil {
			spin.Success()
		}

		opts = append(opts, api.WithHTTPClient(t.HTTPClient()))
		cleanup = func() {
			t.Close()
			tunnel.CloseAgent()
		}
	}

	return api.NewClient(cfg.Endpoint, opts...), cleanup, nil
}
