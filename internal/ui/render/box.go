package render

import "github.com/gdamore/tcell/v2"

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// Rounded border glyphs.
const (
	boxTopLeft     = '╭'
	boxTopRight    = '╮'
	boxBottomLeft  = '╰'
	boxBottomRight = '╯'
	boxHorizontal  = '─'
	boxVertical    = '│'
)

// drawBox draws a rounded border around area with an optional title on the
// top edge.
func (r *Renderer) drawBox(area rect, title string, align alignment, style tcell.Style) {
	if area.w < 2 || area.h < 2 {
		return
	}
	left, right := area.x, area.x+area.w-1
	top, bottom := area.y, area.y+area.h-1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, boxHorizontal, nil, style)
		r.screen.SetContent(x, bottom, boxHorizontal, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, boxVertical, nil, style)
		r.screen.SetContent(right, y, boxVertical, nil, style)
	}
	r.screen.SetContent(left, top, boxTopLeft, nil, style)
	r.screen.SetContent(right, top, boxTopRight, nil, style)
	r.screen.SetContent(left, bottom, boxBottomLeft, nil, style)
	r.screen.SetContent(right, bottom, boxBottomRight, nil, style)

	if title != "" {
		r.drawBorderLabel(area, top, title, align, style)
	}
}

// drawBorderLabel writes label over the border row y of area, keeping the
// corners intact.
func (r *Renderer) drawBorderLabel(area rect, y int, label string, align alignment, style tcell.Style) {
	room := area.w - 2
	if room <= 0 {
		return
	}
	label = r.truncateTextToWidth(label, room)
	width := r.measureTextWidth(label)

	x := area.x + 1
	switch align {
	case alignCenter:
		x += (room - width) / 2
	case alignRight:
		x += room - width
	}
	r.drawTextLine(x, y, width, label, style)
}
