package notifier

import "strings"

// Position is one of nine anchors on a 3×3 grid, numbered 1-9 in reading
// order.
type Position int

const (
	TopLeft Position = iota + 1
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

// DefaultPosition is used whenever a position is missing or invalid.
const DefaultPosition = BottomRight

// Valid reports whether p is in 1-9.
func (p Position) Valid() bool {
	return p >= TopLeft && p <= BottomRight
}

// String returns the anchor name, e.g. "top-left".
func (p Position) String() string {
	pl, ok := p.Placement()
	if !ok {
		return "invalid"
	}
	return string(pl.Vertical) + "-" + string(pl.Horizontal)
}

// VAnchor is the vertical part of a placement.
type VAnchor string

// HAnchor is the horizontal part of a placement.
type HAnchor string

const (
	AnchorTop    VAnchor = "top"
	AnchorMiddle VAnchor = "center"
	AnchorBottom VAnchor = "bottom"

	AnchorLeft   HAnchor = "left"
	AnchorCenter HAnchor = "center"
	AnchorRight  HAnchor = "right"
)

// EdgeOffset is the distance kept from the viewport edges.
const EdgeOffset = "1rem"

// Placement is the resolved screen placement of a position.
type Placement struct {
	Vertical   VAnchor
	Horizontal HAnchor
}

var (
	rows = [3]VAnchor{AnchorTop, AnchorMiddle, AnchorBottom}
	cols = [3]HAnchor{AnchorLeft, AnchorCenter, AnchorRight}
)

// Placement maps p onto the grid. It reports false for invalid positions.
func (p Position) Placement() (Placement, bool) {
	if !p.Valid() {
		return Placement{}, false
	}
	i := int(p) - 1
	return Placement{Vertical: rows[i/3], Horizontal: cols[i%3]}, true
}

// CSS renders the placement as an inline style. Centered axes get a 50%
// translation so the element's center, not its edge, sits on the anchor.
func (pl Placement) CSS() string {
	var decls []string

	switch pl.Vertical {
	case AnchorTop:
		decls = append(decls, "top: "+EdgeOffset+";")
	case AnchorMiddle:
		decls = append(decls, "top: 50%;")
	default:
		decls = append(decls, "bottom: "+EdgeOffset+";")
	}

	switch pl.Horizontal {
	case AnchorLeft:
		decls = append(decls, "left: "+EdgeOffset+";")
	case AnchorCenter:
		decls = append(decls, "left: 50%;")
	default:
		decls = append(decls, "right: "+EdgeOffset+";")
	}

	vc, hc := pl.Vertical == AnchorMiddle, pl.Horizontal == AnchorCenter
	switch {
	case vc && hc:
		decls = append(decls, "transform: translate(-50%, -50%);")
	case hc:
		decls = append(decls, "transform: translateX(-50%);")
	case vc:
		decls = append(decls, "transform: translateY(-50%);")
	}

	return strings.Join(decls, " ")
}
