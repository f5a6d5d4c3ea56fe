package layout

import "github.com/gogpu/layout/text"

const (
	// textCacheSize is the number of measurements kept.
	textCacheSize = 32
	// textCacheMaxWords is the word count above which measurements are not cached.
	textCacheMaxWords = 32
)

// measureKey identifies a measurement. Lookups compare the whole key.
type measureKey struct {
	text          string
	font          text.FontID
	size          float64
	letterSpacing float64
}

// measuredWord is a run of text ending at a space or newline.
// A space is part of the word it ends; a zero-length word marks a newline.
type measuredWord struct {
	start, length int
	width         float64
}

type measuredText struct {
	words            []measuredWord
	minWidth         float64
	width, height    float64
	spaceWidth       float64
	containsNewLines bool
}

func newTextCache() *text.Cache[measureKey, *measuredText] {
	c := text.NewCache[measureKey, *measuredText](textCacheSize)
	c.OnEvict(func(k measureKey) {
		Logger().Debug("layout: text cache eviction", "text", k.text, "font", k.font, "size", k.size)
	})
	return c
}

// measure returns the cached measurement for cfg, measuring on a miss.
// Measurements with more than textCacheMaxWords words are never cached.
func (c *Context) measure(cfg *TextConfig) *measuredText {
	key := measureKey{
		text:          cfg.Text,
		font:          cfg.Font,
		size:          cfg.FontSize,
		letterSpacing: cfg.LetterSpacing,
	}
	if m, ok := c.textCache.Get(key); ok {
		return m
	}

	m := measureWords(c.opts.measurer, key)
	if len(m.words) <= textCacheMaxWords {
		c.textCache.Set(key, m)
	}
	return m
}

// measureWords splits k.text into words at spaces and newlines.
func measureWords(mr text.Measurer, k measureKey) *measuredText {
	m := &measuredText{}
	space := mr.Measure(" ", k.font, k.size)
	m.spaceWidth = space.Width

	s := k.text
	var lineWidth, height float64
	start := 0
	for end := 0; end < len(s); end++ {
		ch := s[end]
		if ch != ' ' && ch != '\n' {
			continue
		}
		length := end - start
		var d text.Dimensions
		if length > 0 {
			d = mr.Measure(s[start:end], k.font, k.size)
			m.minWidth = max(m.minWidth, d.Width)
			height = max(height, d.Height)
		}
		if ch == ' ' {
			w := d.Width + space.Width
			m.words = append(m.words, measuredWord{start: start, length: length + 1, width: w})
			lineWidth += w + k.letterSpacing
		} else {
			if length > 0 {
				m.words = append(m.words, measuredWord{start: start, length: length, width: d.Width})
				lineWidth += d.Width + k.letterSpacing
			}
			m.words = append(m.words, measuredWord{start: end + 1})
			m.width = max(m.width, lineWidth)
			m.containsNewLines = true
			lineWidth = 0
		}
		start = end + 1
	}
	if start < len(s) {
		d := mr.Measure(s[start:], k.font, k.size)
		m.words = append(m.words, measuredWord{start: start, length: len(s) - start, width: d.Width})
		lineWidth += d.Width + k.letterSpacing
		height = max(height, d.Height)
		m.minWidth = max(m.minWidth, d.Width)
	}
	if height == 0 {
		height = space.Height
	}
	m.width = max(m.width, lineWidth) - k.letterSpacing
	m.width = max(m.width, 0)
	m.height = height
	return m
}
