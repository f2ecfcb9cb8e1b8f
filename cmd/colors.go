package cmd

import "github.com/fatih/color"

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func formatScoreWithColor(score int) string {
	switch {
	case score >= 80:
		return colorSuccess(score)
	case score >= 50:
		return colorWarn(score)
	default:
		return colorError(score)
	}
}

func formatPassWithColor(passed bool) string {
	if passed {
		return colorSuccess("pass")
	}
	return colorError("fail")
}
