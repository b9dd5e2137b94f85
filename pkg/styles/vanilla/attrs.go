package vanilla

import "github.com/goliatone/go-formtool/pkg/forms"

// Width sets how many of the form grid's twelve columns a control spans.
// Values outside 1..12 clamp to the nearest bound.
type Width int

// Tooltip sets the cell's title attribute. An explicit control title wins
// over a tooltip attribute.
type Tooltip string

// Icon prepends inline SVG markup to the control's label. The markup is
// sanitized before rendering; icons that sanitize to nothing are dropped.
type Icon string

// CSSClass appends an extra class to the control's cell.
type CSSClass string

const defaultSpan = 12

type cellAttrs struct {
	span    int
	tooltip string
	icon    string
	classes []string
}

func collectAttrs(attrs []forms.StyleAttr) cellAttrs {
	out := cellAttrs{span: defaultSpan}
	for _, attr := range attrs {
		switch v := attr.(type) {
		case Width:
			span := int(v)
			if span < 1 {
				span = 1
			}
			if span > 12 {
				span = 12
			}
			out.span = span
		case Tooltip:
			out.tooltip = string(v)
		case Icon:
			out.icon = sanitizeIconMarkup(string(v))
		case CSSClass:
			if v != "" {
				out.classes = append(out.classes, string(v))
			}
		}
	}
	return out
}
