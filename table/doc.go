// Package table implements a virtual table view and the model protocol
// that feeds it.
//
// A Model holds no data. Its ModelHandler, owned by the application,
// answers row and column counts, column types and cell values on demand,
// and persists edits the view commits. After changing the backing data
// the application reports each change with exactly one RowInserted,
// RowChanged or RowDeleted call, in index order:
//
//	rows = append(rows, r)
//	model.RowInserted(len(rows) - 1)
//
// Several changes may be made to the backing data before their
// notifications are sent. The model keeps its own row count from the
// notifications and, at the next cell read or edit, panics with a
// *ui.ContractError when the handler reports a different count, so a
// forgotten notification is caught before stale rows are shown.
//
// Cells are exchanged as Values, a closed set of String, Int, Color and
// ImageValue. Every value returned for a column must carry the column's
// declared type; there is no coercion between types.
package table
