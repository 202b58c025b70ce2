package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/walker/internal/palette"
	"github.com/vovakirdan/walker/internal/platform/tui"
)

// swatchWidth is how many phases each palette preview shows.
const swatchWidth = 32

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List all color palettes",
	Long:  `Shows every registered palette with a preview of its first colors.`,
	Args:  cobra.NoArgs,
	RunE:  runPalettes,
}

func runPalettes(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	palettes := palette.List()
	logger.Debug("listing palettes", "count", len(palettes))

	if len(palettes) == 0 {
		fmt.Println("No palettes available.")
		return nil
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, p := range palettes {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxTitleLen = max(maxTitleLen, len(p.Title))
	}

	rows := make([]table.Row, 0, len(palettes))
	for _, info := range palettes {
		id := info.ID
		if id == palette.Default {
			id += "*"
		}
		rows = append(rows, table.Row{id, info.Title})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: maxIDLen + 1},
			{Title: "Title", Width: maxTitleLen},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	// Nothing is selected in a printed table.
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	fmt.Println("Available palettes:")
	fmt.Println()
	fmt.Println(t.View())
	fmt.Println()

	for _, info := range palettes {
		// Registered, so Get cannot fail here.
		p, _ := palette.Get(info.ID)
		fmt.Printf("  %-*s  %s\n", maxIDLen, info.ID, tui.PaletteSwatch(p, swatchWidth))
	}

	fmt.Println()
	fmt.Println("* default. Run 'walker --palette <id>' to use a palette.")
	return nil
}
