package gridsheet

// Style is a format-neutral cell style. The zero value means "workbook
// default". Style is a comparable value type so the serializer can
// deduplicate identical declarations.
type Style struct {
	FontBold bool
	FontSize float64 // 0 leaves the workbook default
	FontName string

	FillColor string // RGB hex without '#'; "" means no fill

	// Border draws a uniform box around each cell in the styled region.
	// Supported values: "", "thin", "medium".
	Border string

	HAlign   string // "left", "center", "right"
	VAlign   string // "top", "center", "bottom"
	WrapText bool

	NumFmt string // custom number format code, e.g. "0.00"
}
