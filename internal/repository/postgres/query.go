package postgres

import (
	"fmt"

	"github.com/agencyhub/agencyhub/internal/types"
)

// orderClause builds an ORDER BY fragment from filter sort/order values.
// Sort columns are interpolated into SQL and must come from the per-table
// whitelist; anything else falls back to created_at.
func orderClause(sort, order string, allowed map[string]bool) string {
	if !allowed[sort] {
		sort = "created_at"
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}
	return fmt.Sprintf(" ORDER BY %s %s", sort, order)
}

// paginate appends LIMIT/OFFSET bindings unless the filter is unlimited
func paginate(query string, args map[string]interface{}, f types.BaseFilter) string {
	if f.IsUnlimited() {
		return query
	}
	args["limit"] = f.GetLimit()
	args["offset"] = f.GetOffset()
	return query + " LIMIT :limit OFFSET :offset"
}
