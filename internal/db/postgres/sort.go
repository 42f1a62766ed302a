package postgres

import "strings"

// orderClause turns a "column,direction" sort expression into a safe
// ORDER BY body. Only whitelisted columns are accepted; anything else
// falls back to the default so user input never reaches the SQL text.
func orderClause(sort string, allowed map[string]bool, def string) string {
	if sort == "" {
		return def
	}

	column := sort
	dir := "ASC"
	if i := strings.IndexByte(sort, ','); i >= 0 {
		column = sort[:i]
		if strings.EqualFold(sort[i+1:], "desc") {
			dir = "DESC"
		}
	}

	if !allowed[column] {
		return def
	}
	return column + " " + dir
}
