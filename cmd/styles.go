package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals // shared output styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

func printTitle(title string) {
	fmt.Println(titleStyle.Render(title))
}

func printWarning(format string, args ...interface{}) {
	fmt.Println(warnStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

func printDone(format string, args ...interface{}) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

func printField(label, value string) {
	fmt.Printf("  %s %s\n", labelStyle.Render(label+":"), value)
}
