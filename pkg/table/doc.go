// Package table loads tabular input and extracts the x, y and z sequences of
// a bar chart.
//
// # Formats
//
//   - CSV and TSV: first record is the header ([ReadCSV], [ReadDelimited])
//   - XLSX: first row of the selected sheet is the header ([ReadXLSX])
//   - JSON: an array of row objects, or an object of column arrays
//     ([ReadJSON])
//
// [Load] picks the reader from the file extension.
//
// # Series
//
// [Series] turns three columns into chart input. Columns may have different
// lengths: trailing empty cells are trimmed per column, so a file can list the
// x axis, the y axis and the flattened z grid side by side:
//
//	x,y,z
//	1,2,10
//	10,4,30
//	,,20
//	,,45
//
// Empty, "NaN", "null" and "None" z cells inside a column are missing
// heights and render as placeholders.
package table
