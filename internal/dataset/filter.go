package dataset

// FilterGeneration returns a new Table holding the rows whose tag column
// equals target, preserving row order. The input table is unchanged.
// Filtering an already-filtered table on the same target returns the
// same rows.
//
// An empty result is an EmptyResultError: the pipeline never hands a
// degenerate table to selection or visualization.
func FilterGeneration(t *Table, column string, target int) (*Table, error) {
	if !t.HasColumn(column) {
		return nil, &SchemaError{Column: column}
	}

	var rows []int
	for i := 0; i < t.Len(); i++ {
		if t.Int(column, i) == target {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return nil, &EmptyResultError{Column: column, Target: target}
	}
	return t.Select(rows), nil
}
