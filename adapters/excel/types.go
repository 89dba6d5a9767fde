package excel

// RawSheet is the first worksheet of a workbook as read, before typing
type RawSheet struct {
	Name    string     // Worksheet name
	Headers []string   // Normalized column headers
	Rows    [][]string // Data rows, blank rows removed
}
