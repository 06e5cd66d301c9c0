package dataprocessing

import (
	"strings"
)

// RawTable is the tokenizer output: an ordered sequence of rows, each an
// ordered sequence of field strings. Rows are not required to be
// rectangular; the field mapper treats missing trailing fields as empty.
type RawTable [][]string

// DetectDelimiter guesses the field delimiter from the first line of the
// document: semicolon if the first line contains one, comma otherwise. The
// choice is fixed for the whole document.
func DetectDelimiter(text string) rune {
	firstLine := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		firstLine = text[:i]
	}
	if strings.ContainsRune(firstLine, ';') {
		return ';'
	}
	return ','
}

// Tokenize converts raw CSV text into a RawTable. It accepts both comma and
// semicolon delimited input, handles quoted fields with escaped quotes
// ("" inside quotes yields one literal quote) and embedded delimiters or
// newlines, tolerates \n and \r\n terminators, trims each field, and
// suppresses a single trailing blank line. Tokenize never fails: an
// unterminated quoted field simply consumes the rest of the document as one
// field.
func Tokenize(text string) RawTable {
	delim := DetectDelimiter(text)

	var (
		table    RawTable
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	closeField := func() {
		row = append(row, strings.TrimSpace(field.String()))
		field.Reset()
	}
	closeRow := func() {
		// Skip a fully blank line so a trailing newline produces no
		// phantom empty row.
		if field.Len() == 0 && len(row) == 0 {
			return
		}
		closeField()
		table = append(table, row)
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == delim && !inQuotes:
			closeField()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			closeRow()
		default:
			field.WriteRune(c)
		}
	}

	// Flush input without a trailing newline.
	if field.Len() > 0 || len(row) > 0 {
		closeField()
		table = append(table, row)
	}

	return table
}
