// Package exporter writes classified enrollment records and their
// aggregate summaries for download.
//
// Two formats are supported: CSV with a UTF-8 BOM so spreadsheet
// applications handle accented names correctly, and a two-sheet XLSX
// workbook (records plus summary) built with excelize. Both writers
// stream to an io.Writer so HTTP handlers can write straight to the
// response.
package exporter
