package core

// Color is the role a screen cell plays in the scene. The platform layer
// resolves roles to concrete terminal colours (they depend on the track hue,
// which changes every beat), so the core never deals with RGB values.
type Color uint8

// Scene colour roles.
const (
	ColorDefault Color = iota
	ColorLaneBright
	ColorLaneDark
	ColorLaneMid
	ColorWall
	ColorCenter
	ColorCenterEdge
	ColorCursor
	ColorText
	ColorTitle
	ColorRecord
)

// String returns a human-readable name for the role.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorLaneBright:
		return "lane-bright"
	case ColorLaneDark:
		return "lane-dark"
	case ColorLaneMid:
		return "lane-mid"
	case ColorWall:
		return "wall"
	case ColorCenter:
		return "center"
	case ColorCenterEdge:
		return "center-edge"
	case ColorCursor:
		return "cursor"
	case ColorText:
		return "text"
	case ColorTitle:
		return "title"
	case ColorRecord:
		return "record"
	default:
		return "unknown"
	}
}
