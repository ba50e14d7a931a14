package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <chart>",
		Short: "Print the computed sectors and child frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := loadChart(args[0], loggerFromContext(cmd.Context()), false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			c := ch.layout
			fmt.Fprintln(out, styleTitle.Render(args[0]))
			printKeyValue(out, "mode", c.LayoutMode())
			printKeyValue(out, "size", fmt.Sprintf("%gx%g", c.Size().Width, c.Size().Height))
			printKeyValue(out, "radius", strconv.FormatFloat(c.Radius(), 'f', 2, 64))
			printKeyValue(out, "inner radius", c.InnerRadius())
			printKeyValue(out, "range", fmt.Sprintf("%g° from %g°", c.AngleRange(), c.AngleOffset()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, sectorTable(ch))
			return nil
		},
	}
}

func sectorTable(ch *chart) string {
	sectors := ch.layout.Sectors()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("#", "LABEL", "PERCENT", "START", "END", "SWEEP", "FRAME", "HIGHLIGHT").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col >= 2 && col <= 5:
				return styleNumber
			default:
				return styleCell
			}
		})

	for i, id := range ch.ids {
		s := sectors[i]
		frame, _ := ch.layout.Frame(id)
		highlight := ""
		if ch.attrs.Slices[i].Highlight {
			highlight = iconSuccess
		}
		t.Row(
			strconv.Itoa(i),
			ch.label(i),
			strconv.FormatFloat(ch.attrs.Slices[i].Percent, 'f', -1, 64),
			strconv.FormatFloat(s.Start, 'f', 1, 64),
			strconv.FormatFloat(s.End, 'f', 1, 64),
			strconv.FormatFloat(s.Sweep(), 'f', 1, 64),
			fmt.Sprintf("%.0f,%.0f %.0fx%.0f", frame.Left, frame.Top, frame.Width(), frame.Height()),
			highlight,
		)
	}
	return t.String()
}
