package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/abimaelmartell/moni-dash/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if err := validateEndpoint(cfg.Endpoint); err != nil {
		return err
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("interval %s is too fast - the minimum is %s", cfg.Interval, MinInterval),
			"Use something like '1s' or '500ms'.")
	}

	if cfg.RequestTimeout < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("request_timeout can't be negative (got %s)", cfg.RequestTimeout),
			"Use 0 to rely on the transport default, or a duration like '2s'.")
	}

	if cfg.ModalTransition < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("modal_transition can't be negative (got %s)", cfg.ModalTransition),
			"Use 0 to close the info panel instantly.")
	}

	switch cfg.Ordering {
	case OrderingLastApplied, OrderingLastIssued:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("ordering '%s' isn't recognized", cfg.Ordering),
			fmt.Sprintf("Use '%s' or '%s'.", OrderingLastApplied, OrderingLastIssued))
	}

	if cfg.Location != "" && cfg.Location != "Local" {
		if _, err := time.LoadLocation(cfg.Location); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("location '%s' isn't a known time zone", cfg.Location),
				"Use 'Local', 'UTC', or an IANA name like 'Europe/Berlin'.")
		}
	}

	if err := validateThresholds(cfg.Thresholds); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'thresholds' section in your config.yaml.")
	}

	return nil
}

// validateEndpoint checks the endpoint is an absolute http(s) URL.
func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return errors.New(errors.ErrConfig,
			"endpoint is empty",
			"Set it to the moni server URL, e.g. http://localhost:8080")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("endpoint '%s' isn't a valid URL", endpoint),
			"Use a URL like http://localhost:8080")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("endpoint '%s' must use http or https", endpoint),
			"Use a URL like http://localhost:8080")
	}

	if u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("endpoint '%s' has no host", endpoint),
			"Use a URL like http://localhost:8080")
	}

	return nil
}

func validateThresholds(t Thresholds) error {
	if err := validateThreshold("cpu", t.CPU); err != nil {
		return err
	}
	if err := validateThreshold("memory", t.Memory); err != nil {
		return err
	}
	return validateThreshold("disk", t.Disk)
}

// validateThreshold checks a threshold configuration for a single metric type.
func validateThreshold(name string, thresh ThresholdValues) error {
	if thresh.Warning < 0 || thresh.Warning > 100 {
		return fmt.Errorf("thresholds.%s.warning needs to be 0-100 (got %d)", name, thresh.Warning)
	}
	if thresh.Critical < 0 || thresh.Critical > 100 {
		return fmt.Errorf("thresholds.%s.critical needs to be 0-100 (got %d)", name, thresh.Critical)
	}
	// Warning should be less than critical (if both are non-zero)
	if thresh.Warning > 0 && thresh.Critical > 0 && thresh.Warning >= thresh.Critical {
		return fmt.Errorf("thresholds.%s.warning (%d%%) is higher than critical (%d%%) - should be the other way around", name, thresh.Warning, thresh.Critical)
	}
	return nil
}
