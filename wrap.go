package layout

import "math"

// wrappedLine is one line of a wrapped text element.
type wrappedLine struct {
	text  string
	width float64
}

// wrapText breaks every text element into lines that fit its resolved
// width and sets its height to lineHeight * lineCount.
func (c *Context) wrapText() {
	for _, i := range c.texts {
		e := &c.elements[i]
		cfg := e.text
		m := c.measure(cfg)
		e.measured = m

		lineHeight := cfg.LineHeight
		if lineHeight <= 0 {
			lineHeight = m.height
		}

		width := e.width
		switch cfg.Wrap {
		case WrapNone:
			e.lines = append(e.lines[:0], wrappedLine{text: cfg.Text, width: m.width})
			e.height = lineHeight
			continue
		case WrapNewlines:
			width = math.Inf(1)
		}

		e.lines = wrapWords(e.lines[:0], cfg.Text, m, width, cfg.LetterSpacing)
		e.height = lineHeight * float64(len(e.lines))
	}
}

// wrapWords appends the lines of s packed greedily into width to dst.
func wrapWords(dst []wrappedLine, s string, m *measuredText, width, letterSpacing float64) []wrappedLine {
	if !m.containsNewLines && m.width <= width {
		return append(dst, wrappedLine{text: s, width: m.width})
	}

	var lineWidth float64
	lineStart, lineLen := 0, 0
	for k := 0; k < len(m.words); {
		w := m.words[k]
		switch {
		case lineLen == 0 && w.length > 0 && lineWidth+w.width > width:
			// A single word wider than the line gets a line of its own.
			dst = append(dst, trimLine(s, w.start, w.length, w.width, m.spaceWidth))
			lineStart = w.start + w.length
			k++
		case w.length == 0 || lineWidth+w.width > width:
			dst = append(dst, trimLine(s, lineStart, lineLen, lineWidth-letterSpacing, m.spaceWidth))
			if lineLen == 0 || w.length == 0 {
				k++
			}
			lineWidth, lineLen = 0, 0
			lineStart = w.start
		default:
			lineWidth += w.width + letterSpacing
			lineLen += w.length
			k++
		}
	}
	if lineLen > 0 {
		dst = append(dst, trimLine(s, lineStart, lineLen, lineWidth-letterSpacing, m.spaceWidth))
	}
	return dst
}

// trimLine returns s[start:start+n] without a trailing space.
func trimLine(s string, start, n int, width, spaceWidth float64) wrappedLine {
	if n > 0 && s[start+n-1] == ' ' {
		n--
		width -= spaceWidth
	}
	return wrappedLine{text: s[start : start+n], width: max(width, 0)}
}
