// Package render turns a sampled spectrum into write-only artifacts: a PNG
// figure, a one-page PDF report and an XLSX workbook. Nothing here is read
// back by the program.
package render
