package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

func FormatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v < 1000 {
		return sign + "$" + humanize.FtoaWithDigits(v, 2)
	}
	value, prefix := humanize.ComputeSI(v)
	return sign + "$" + humanize.FtoaWithDigits(value, 3) + prefix
}

// FormatRAM renders an amount of RAM expressed in GB.
func FormatRAM(gb float64) string {
	if gb <= 0 {
		return "0.00GB"
	}
	// One extra byte keeps exact powers of 1024 from rounding down a unit.
	return strings.ReplaceAll(humanize.IBytes(uint64(gb*(1<<30))+1), " ", "")
}

func FormatExp(v float64) string {
	return humanize.CommafWithDigits(v, 3)
}

func FormatSecurity(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

func FormatPercent(v float64, digits int) string {
	return fmt.Sprintf("%.*f%%", digits, v*100)
}

// FormatDuration renders milliseconds as "1 hours 2 minutes 3.456 seconds".
func FormatDuration(ms float64, showMilli bool) string {
	total := ms / 1000
	days := math.Floor(total / 86400)
	total -= days * 86400
	hours := math.Floor(total / 3600)
	total -= hours * 3600
	minutes := math.Floor(total / 60)
	total -= minutes * 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%d days ", int(days))
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%d hours ", int(hours))
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%d minutes ", int(minutes))
	}
	if showMilli {
		fmt.Fprintf(&b, "%.3f seconds", total)
	} else {
		fmt.Fprintf(&b, "%d seconds", int(math.Floor(total)))
	}
	return b.String()
}

// ProgressBarText renders progress in [0,1] as "[|||---]" with totalTicks cells.
func ProgressBarText(progress float64, totalTicks int) string {
	if totalTicks <= 0 {
		totalTicks = ProgressBarTicks
	}
	progress = math.Max(0, math.Min(1, progress))

	bars := int(math.Max(math.Floor(progress/(1/float64(totalTicks))), 1))
	if bars > totalTicks {
		bars = totalTicks
	}
	dashes := totalTicks - bars

	return "[" + strings.Repeat("|", bars) + strings.Repeat("-", dashes) + "]"
}
