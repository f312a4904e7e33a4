package report

// Layout positions every element of the report, in points, with y
// growing downwards from the top of the page.
type Layout struct {
	TitleX, TitleY float64
	HeaderY        float64
	FirstRowY      float64
	RowHeight      float64
	// TopY is where the cursor restarts on a continuation page.
	TopY float64
	// RowLimitY: once the cursor passes it after a row, a new page starts.
	RowLimitY float64
	// TotalLimitY: the total line needs the cursor at or above it,
	// otherwise it goes on a fresh page.
	TotalLimitY float64
	// TotalOffset is the gap between the cursor and the total line.
	TotalOffset float64
	Columns     [4]float64

	TitleSize, HeaderSize, BodySize float64
}

// LetterLayout matches a US Letter page (612x792 pt).
func LetterLayout() Layout {
	return Layout{
		TitleX:      200,
		TitleY:      50,
		HeaderY:     80,
		FirstRowY:   100,
		RowHeight:   20,
		TopY:        50,
		RowLimitY:   722,
		TotalLimitY: 692,
		TotalOffset: 20,
		Columns:     [4]float64{50, 150, 300, 400},
		TitleSize:   16,
		HeaderSize:  12,
		BodySize:    12,
	}
}
