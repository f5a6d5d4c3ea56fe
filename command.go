package layout

import (
	"fmt"
	"iter"

	"github.com/gogpu/layout/text"
)

// CommandKind identifies the type of a render command.
type CommandKind uint8

const (
	CommandRectangle CommandKind = iota // Filled background rectangle
	CommandBorder                       // Border around an element
	CommandText                         // One wrapped line of text
	CommandClipStart                    // Push a clip rectangle
	CommandClipEnd                      // Pop the innermost clip rectangle
)

var commandKindNames = [...]string{
	CommandRectangle: "Rectangle",
	CommandBorder:    "Border",
	CommandText:      "Text",
	CommandClipStart: "ClipStart",
	CommandClipEnd:   "ClipEnd",
}

// String returns the name of the command kind.
func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", k)
}

// Payload carries the kind-specific data of a render command:
// RectanglePayload, BorderPayload, TextPayload or ClipPayload.
type Payload interface {
	payload()
}

// RectanglePayload fills BoundingBox.
type RectanglePayload struct {
	Color        Color
	CornerRadius float64
}

// BorderPayload strokes the edges of BoundingBox.
type BorderPayload struct {
	Color        Color
	Width        BorderWidth
	CornerRadius float64
}

// TextPayload draws one line of text with its top left at BoundingBox.X, Y.
type TextPayload struct {
	Text          string
	Font          text.FontID
	FontSize      float64
	LetterSpacing float64
	LineHeight    float64
	Color         Color
}

// ClipPayload describes which axes a clip region bounds.
type ClipPayload struct {
	Horizontal, Vertical bool
}

func (RectanglePayload) payload() {}
func (BorderPayload) payload()    {}
func (TextPayload) payload()      {}
func (ClipPayload) payload()      {}

// RenderCommand is one draw instruction.
type RenderCommand struct {
	Kind        CommandKind
	ZIndex      int
	Element     Handle
	ID          string
	BoundingBox BoundingBox
	// Payload is nil for CommandClipEnd.
	Payload Payload
}

func (r RenderCommand) String() string {
	s := fmt.Sprintf("%s z=%d %v", r.Kind, r.ZIndex, r.BoundingBox)
	if r.ID != "" {
		s += fmt.Sprintf(" id=%q", r.ID)
	}
	if t, ok := r.Payload.(TextPayload); ok {
		s += fmt.Sprintf(" %q", t.Text)
	}
	return s
}

// Commands is an immutable, ordered list of render commands.
// Clip starts and clip ends are balanced and bracket the commands of the
// clipped subtree.
type Commands struct {
	cmds []RenderCommand
}

// Len returns the number of commands.
func (c *Commands) Len() int {
	return len(c.cmds)
}

// At returns the i-th command.
func (c *Commands) At(i int) RenderCommand {
	return c.cmds[i]
}

// All iterates over the commands in draw order.
func (c *Commands) All() iter.Seq2[int, RenderCommand] {
	return func(yield func(int, RenderCommand) bool) {
		for i, cmd := range c.cmds {
			if !yield(i, cmd) {
				return
			}
		}
	}
}

// Slice returns a copy of the commands.
func (c *Commands) Slice() []RenderCommand {
	out := make([]RenderCommand, len(c.cmds))
	copy(out, c.cmds)
	return out
}

// Backend receives commands during Playback.
type Backend interface {
	FillRect(box BoundingBox, p RectanglePayload)
	StrokeBorder(box BoundingBox, p BorderPayload)
	DrawText(box BoundingBox, p TextPayload)
	PushClip(box BoundingBox, p ClipPayload)
	PopClip()
}

// Playback replays the commands to a backend in draw order.
func (c *Commands) Playback(b Backend) {
	for _, cmd := range c.cmds {
		switch p := cmd.Payload.(type) {
		case RectanglePayload:
			b.FillRect(cmd.BoundingBox, p)
		case BorderPayload:
			b.StrokeBorder(cmd.BoundingBox, p)
		case TextPayload:
			b.DrawText(cmd.BoundingBox, p)
		case ClipPayload:
			b.PushClip(cmd.BoundingBox, p)
		default:
			if cmd.Kind == CommandClipEnd {
				b.PopClip()
			}
		}
	}
}
