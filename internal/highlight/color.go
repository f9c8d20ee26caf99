package highlight

// Color is the logical highlight category. The renderer decides how each
// category maps onto actual terminal colors.
type Color uint8

const (
	// ColorString marks text and byte string literals.
	ColorString Color = iota
	// ColorChar marks character and single byte literals.
	ColorChar
	// ColorNumber marks integer, float, and boolean literals.
	ColorNumber
	// ColorKeyword marks built-in type names and directive keywords.
	ColorKeyword
	// ColorFunction marks names in call position.
	ColorFunction
)

var colorNames = map[Color]string{
	ColorString:   "String",
	ColorChar:     "Char",
	ColorNumber:   "Number",
	ColorKeyword:  "Keyword",
	ColorFunction: "Function",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "Unknown"
}
