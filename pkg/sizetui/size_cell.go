package sizetui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/datatug/sizetug/pkg/fsutils"
)

// newSizeCell renders a right-aligned size with a colour by magnitude.
func newSizeCell(size int64, defaultColor tcell.Color) *tview.TableCell {
	sizeText := "  " + fsutils.GetSizeShortText(size)
	sizeCell := tview.NewTableCell(sizeText)
	sizeCell.SetAlign(tview.AlignRight)
	switch {
	case size >= 1024*1024*1024*1024: // TB
		sizeCell.SetTextColor(tcell.ColorOrangeRed)
	case size >= 1024*1024*1024: // GB
		sizeCell.SetTextColor(tcell.ColorYellow)
	case size >= 1024*1024: // MB
		sizeCell.SetTextColor(tcell.ColorLightGreen)
	case size >= 1024: // KB
		sizeCell.SetTextColor(tcell.ColorWhiteSmoke)
	default:
		sizeCell.SetText(sizeText + " ")
		sizeCell.SetTextColor(defaultColor)
	}
	return sizeCell
}
