// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Style holds the colours used for the document area.
type Style struct {
	Default    tcell.Style
	LineNumber tcell.Style
	Selection  tcell.Style
}

// DefaultStyle is a plain dark scheme.
func DefaultStyle() Style {
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	return Style{
		Default:    base,
		LineNumber: base.Foreground(tcell.ColorGray),
		Selection:  base.Reverse(true),
	}
}

// Document is what DrawDocument needs from the buffer.
type Document interface {
	Lines() []string
	Cursor() int
	LineCol(offset int) (line, col int)
}

// View is the drawing state that outlives a frame.
type View struct {
	TopLine    int // First visible line
	LeftCol    int // First visible visual column
	TabWidth   int
	StatusRows int // Rows reserved below the text area

	// Selection in rune offsets, SelEnd exclusive. Ignored unless HasSel.
	HasSel   bool
	SelStart int
	SelEnd   int
}

func (v *View) tabWidth() int {
	if v.TabWidth <= 0 {
		return 4
	}
	return v.TabWidth
}

// clusterWidth is the visual width of a grapheme cluster starting at visual
// column x. Tabs advance to the next tab stop.
func (v *View) clusterWidth(cluster string, width, x int) int {
	if cluster == "\t" {
		tw := v.tabWidth()
		return tw - x%tw
	}
	return width
}

// visualColumn converts a rune column within line to a visual column.
func (v *View) visualColumn(line string, runeCol int) int {
	visual, runeIdx := 0, 0
	gr := uniseg.NewGraphemes(line)
	for runeIdx < runeCol && gr.Next() {
		visual += v.clusterWidth(gr.Str(), gr.Width(), visual)
		runeIdx += len(gr.Runes())
	}
	return visual
}

func gutterWidth(lineCount, screenWidth int) (digits, gutter int) {
	if lineCount < 1 {
		lineCount = 1
	}
	digits = int(math.Log10(float64(lineCount))) + 1
	gutter = digits + 1
	if gutter >= screenWidth {
		return digits, 0
	}
	return digits, gutter
}

// ScrollToCursor adjusts the viewport so the cursor is visible.
func (v *View) ScrollToCursor(t *TUI, doc Document) {
	width, height := t.Size()
	viewHeight := height - v.StatusRows
	lines := doc.Lines()
	_, gutter := gutterWidth(len(lines), width)
	textWidth := width - gutter
	if viewHeight <= 0 || textWidth <= 0 {
		return
	}

	line, col := doc.LineCol(doc.Cursor())
	if line < v.TopLine {
		v.TopLine = line
	} else if line >= v.TopLine+viewHeight {
		v.TopLine = line - viewHeight + 1
	}

	visual := 0
	if line < len(lines) {
		visual = v.visualColumn(lines[line], col)
	}
	if visual < v.LeftCol {
		v.LeftCol = visual
	} else if visual >= v.LeftCol+textWidth {
		v.LeftCol = visual - textWidth + 1
	}
}

// DrawDocument draws the visible lines with a line-number gutter and the
// selection, then places the terminal cursor.
func DrawDocument(t *TUI, doc Document, v *View) {
	width, height := t.Size()
	viewHeight := height - v.StatusRows
	if viewHeight <= 0 || width <= 0 {
		return
	}
	screen := t.screen
	style := t.style

	lines := doc.Lines()
	digits, gutter := gutterWidth(len(lines), width)
	textWidth := width - gutter
	cursorLine, cursorCol := doc.LineCol(doc.Cursor())

	// Rune offset of the first visible line.
	offset := 0
	for i := 0; i < v.TopLine && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1
	}

	for screenY := 0; screenY < viewHeight; screenY++ {
		lineIdx := screenY + v.TopLine
		for x := 0; x < width; x++ {
			screen.SetContent(x, screenY, ' ', nil, style.Default)
		}
		if lineIdx >= len(lines) {
			continue
		}

		if gutter > 0 {
			numStyle := style.LineNumber
			if lineIdx == cursorLine {
				numStyle = numStyle.Bold(true)
			}
			for i, r := range fmt.Sprintf("%*d", digits, lineIdx+1) {
				screen.SetContent(i, screenY, r, nil, numStyle)
			}
		}

		line := lines[lineIdx]
		gr := uniseg.NewGraphemes(line)
		visualX, runeIdx := 0, 0
		for gr.Next() {
			runes := gr.Runes()
			cw := v.clusterWidth(gr.Str(), gr.Width(), visualX)
			screenX := visualX - v.LeftCol + gutter

			cellStyle := style.Default
			if v.HasSel && offset+runeIdx >= v.SelStart && offset+runeIdx < v.SelEnd {
				cellStyle = style.Selection
			}

			if visualX+cw > v.LeftCol && screenX >= gutter {
				if runes[0] == '\t' {
					for i := 0; i < cw && screenX+i < width; i++ {
						screen.SetContent(screenX+i, screenY, ' ', nil, cellStyle)
					}
				} else if screenX < width {
					screen.SetContent(screenX, screenY, runes[0], runes[1:], cellStyle)
				}
			}

			visualX += cw
			runeIdx += len(runes)
			if visualX >= v.LeftCol+textWidth {
				break
			}
		}
		offset += len([]rune(line)) + 1
	}

	cursorX := gutter - v.LeftCol
	if cursorLine < len(lines) {
		cursorX += v.visualColumn(lines[cursorLine], cursorCol)
	}
	cursorY := cursorLine - v.TopLine
	if cursorX < gutter || cursorX >= width || cursorY < 0 || cursorY >= viewHeight {
		screen.HideCursor()
	} else {
		screen.ShowCursor(cursorX, cursorY)
	}
}
