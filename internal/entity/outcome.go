package entity

// LineType names the kind of line that can complete a win.
type LineType uint8

const (
	Row LineType = iota
	Column
	DiagonalMain
	DiagonalAnti
)

func (that LineType) String() string {
	switch that {
	case Row:
		return "row"
	case Column:
		return "column"
	case DiagonalMain:
		return "main diagonal"
	case DiagonalAnti:
		return "anti diagonal"
	default:
		return "unknown"
	}
}

// WinLine identifies the row, column or diagonal that produced a win.
// Index is only meaningful for rows and columns.
type WinLine struct {
	Type  LineType
	Index int
}

// Cell is a (row, column) board position.
type Cell struct {
	Row int
	Col int
}

// Cells - returns the three positions covered by the line.
func (that WinLine) Cells() [Size]Cell {
	var cells [Size]Cell

	for i := range cells {
		switch that.Type {
		case Row:
			cells[i] = Cell{Row: that.Index, Col: i}
		case Column:
			cells[i] = Cell{Row: i, Col: that.Index}
		case DiagonalMain:
			cells[i] = Cell{Row: i, Col: i}
		case DiagonalAnti:
			cells[i] = Cell{Row: i, Col: Size - 1 - i}
		}
	}

	return cells
}

func (that WinLine) Contains(row, col int) bool {
	for _, cell := range that.Cells() {
		if cell.Row == row && cell.Col == col {
			return true
		}
	}

	return false
}

// Lines is every winning line in scan order: rows, columns, main diagonal, anti diagonal.
var Lines = []WinLine{
	{Type: Row, Index: 0},
	{Type: Row, Index: 1},
	{Type: Row, Index: 2},
	{Type: Column, Index: 0},
	{Type: Column, Index: 1},
	{Type: Column, Index: 2},
	{Type: DiagonalMain},
	{Type: DiagonalAnti},
}

type Result uint8

const (
	NoWinner Result = iota
	XWins
	OWins
	Draw
)

func (that Result) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "no_winner"
	}
}

// Outcome is the result of scanning a board. Line is set only for wins.
type Outcome struct {
	Result Result
	Line   *WinLine
}

// Clone - returns a copy that shares no memory with the original.
func (that Outcome) Clone() Outcome {
	if that.Line != nil {
		line := *that.Line
		that.Line = &line
	}

	return that
}

func (that Outcome) IsWin() bool {
	return that.Result == XWins || that.Result == OWins
}

// Winner - returns the winning player, or Empty when nobody has won.
func (that Outcome) Winner() Owner {
	switch that.Result {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

func winFor(owner Owner, line WinLine) Outcome {
	result := XWins
	if owner == O {
		result = OWins
	}

	return Outcome{Result: result, Line: &line}
}
