// Package format turns raw metric values into the display strings shown by the
// dashboard and the info command. Every function here is pure.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// TimeLayout is the layout used for chart axis labels.
const TimeLayout = "15:04:05"

// FormatBytes renders a byte count with a binary unit. Counts under 1 KB are
// shown as a grouped integer ("1,023 B"); larger values use two decimals.
func FormatBytes(n uint64) string {
	switch {
	case n < kib:
		return humanize.Comma(int64(n)) + " B"
	case n < mib:
		return grouped(float64(n)/kib) + " KB"
	case n < gib:
		return grouped(float64(n)/mib) + " MB"
	default:
		return grouped(float64(n)/gib) + " GB"
	}
}

// grouped formats f with two decimals and thousands separators.
func grouped(f float64) string {
	return humanize.FormatFloat("#,###.##", f)
}

// FormatOS builds the operating system line of the info panel.
func FormatOS(os, platform, platformVersion, kernelVersion string) string {
	switch os {
	case "linux":
		return capitalize(platform) + " " + platformVersion + " (kernel " + kernelVersion + ")"
	case "darwin":
		// Two spaces before the kernel part, as the upstream web client renders it.
		return "MacOS " + platformVersion + "  (kernel " + kernelVersion + ")"
	default:
		return strings.Join([]string{os, platform, platformVersion, kernelVersion}, " ")
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FormatMemoryMB renders a process memory cell as whole mebibytes.
func FormatMemoryMB(bytes uint64) string {
	return fmt.Sprintf("%d MB", int64(math.Round(float64(bytes)/mib)))
}

// FormatCPUCell renders a process CPU cell.
func FormatCPUCell(cpu float64) string {
	return fmt.Sprintf("%.2f%%", cpu)
}

// FormatPercent renders a summary percentage with one decimal.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// Ratio returns used/total as a percentage. A zero total yields 0.
func Ratio(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// FormatUsage renders "<used> used of <total>".
func FormatUsage(used, total uint64) string {
	return FormatBytes(used) + " used of " + FormatBytes(total)
}

// FormatCapacity renders "<used> / <total>".
func FormatCapacity(used, total uint64) string {
	return FormatBytes(used) + " / " + FormatBytes(total)
}

// FormatLoad renders the three load averages.
func FormatLoad(load1, load5, load15 float64) string {
	return fmt.Sprintf("%.1f / %.1f / %.1f", load1, load5, load15)
}

// FormatCPUModel renders "<model> (<cores> cores)".
func FormatCPUModel(model string, cores int) string {
	return fmt.Sprintf("%s (%d cores)", model, cores)
}

// FormatInterval renders a millisecond interval as seconds, e.g. 1500 -> "1.5s".
func FormatInterval(ms int64) string {
	return strconv.FormatFloat(float64(ms)/1000, 'f', -1, 64) + "s"
}

// TimeLabel renders a unix timestamp as a time of day in loc.
func TimeLabel(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ts, 0).In(loc).Format(TimeLayout)
}
