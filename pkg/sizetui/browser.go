// Package sizetui renders an interactive directory size browser: one table
// row per child of the current directory, largest first, with directories
// sized by aggregating their subtree.
package sizetui

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/datatug/sizetug/pkg/dirsize"
	"github.com/datatug/sizetug/pkg/files"
)

var osReadDir = os.ReadDir

// Row is one rendered child of the current directory.
type Row struct {
	Entry files.EntryWithDirPath
	Size  uint64
	Err   error
}

type BrowserOption func(*Browser)

// WithStopper replaces the quit action, by default app.Stop.
func WithStopper(stop func()) BrowserOption {
	return func(b *Browser) {
		b.stop = stop
	}
}

type Browser struct {
	Table *tview.Table

	app  *tview.Application
	dir  string
	rows []Row
	stop func()
}

func NewBrowser(app *tview.Application, options ...BrowserOption) *Browser {
	table := tview.NewTable()
	table.SetSelectable(true, false)
	table.SetBorder(true)
	table.SetTitleAlign(tview.AlignLeft)

	b := &Browser{
		app:   app,
		Table: table,
	}
	b.stop = func() {
		if app != nil {
			app.Stop()
		}
	}
	table.SetInputCapture(b.inputCapture)
	table.SetSelectedFunc(func(row, _ int) {
		b.descend(row)
	})

	for _, option := range options {
		option(b)
	}
	return b
}

// SetupApp mounts a browser rooted at dir as the application's root.
func SetupApp(app *tview.Application, dir string) (*Browser, error) {
	b := NewBrowser(app)
	if err := b.SetDir(dir); err != nil {
		return nil, err
	}
	app.SetRoot(b.Table, true)
	return b, nil
}

// Dir returns the directory currently shown.
func (b *Browser) Dir() string {
	return b.dir
}

// Rows returns the rows currently shown, largest first.
func (b *Browser) Rows() []Row {
	return b.rows
}

// SetDir loads dir's children, sizes them and redraws the table. Sizing
// errors do not fail the whole listing: they are kept on the affected row.
func (b *Browser) SetDir(dir string) error {
	entries, err := osReadDir(dir)
	if err != nil {
		return err
	}
	b.dir = dir
	b.rows = buildRows(dir, entries)
	b.updateTable()
	return nil
}

func buildRows(dir string, entries []os.DirEntry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		row := Row{Entry: *files.NewEntryWithDirPath(entry, dir)}
		if entry.IsDir() {
			var entryErr error
			row.Size, row.Err = dirsize.Aggregate(
				row.Entry.FullName(),
				dirsize.WithErrorHandler(func(e *dirsize.EntryError) {
					entryErr = e
				}),
			)
			if row.Err == nil {
				row.Err = entryErr
			}
		} else if entry.Type().IsRegular() {
			info, err := entry.Info()
			if err != nil {
				row.Err = err
			} else if info != nil {
				row.Size = uint64(info.Size())
			}
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, z Row) int {
		if a.Size != z.Size {
			if a.Size < z.Size {
				return 1
			}
			return -1
		}
		return strings.Compare(a.Entry.Name(), z.Entry.Name())
	})
	return rows
}

func (b *Browser) updateTable() {
	b.Table.Clear()
	b.Table.SetTitle(" " + b.dir + " ")
	for i, row := range b.rows {
		name := row.Entry.Name()
		if row.Entry.IsDir() {
			name += string(os.PathSeparator)
		}
		nameCell := tview.NewTableCell(" " + name)
		nameCell.SetExpansion(1)
		nameCell.SetReference(i)
		if row.Entry.IsDir() {
			nameCell.SetTextColor(tcell.ColorLightBlue)
		}
		b.Table.SetCell(i, 0, nameCell)

		b.Table.SetCell(i, 1, newSizeCell(int64(row.Size), tcell.ColorLightGray))

		marker := " "
		if row.Err != nil {
			marker = "!"
		}
		markerCell := tview.NewTableCell(marker)
		markerCell.SetTextColor(tcell.ColorOrangeRed)
		b.Table.SetCell(i, 2, markerCell)
	}
	if len(b.rows) > 0 {
		b.Table.Select(0, 0)
	}
}

func (b *Browser) descend(row int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	target := b.rows[row]
	if !target.Entry.IsDir() {
		return
	}
	_ = b.SetDir(target.Entry.FullName())
}

func (b *Browser) up() {
	parent := filepath.Dir(b.dir)
	if parent == b.dir {
		return
	}
	_ = b.SetDir(parent)
}

// InputCapture exposes the key handling for tests.
func (b *Browser) InputCapture(event *tcell.EventKey) *tcell.EventKey {
	return b.inputCapture(event)
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyRight:
		row, _ := b.Table.GetSelection()
		b.descend(row)
		return nil
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		b.up()
		return nil
	case tcell.KeyRune:
		if event.Rune() == 'q' {
			b.stop()
			return nil
		}
	}
	return event
}
