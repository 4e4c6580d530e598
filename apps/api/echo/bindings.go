package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/portal/core/portal"
)

var orderingParam = "ordering"

// Ordering binds `?ordering=name,-gpa`: comma separated fields, "-" for descending.
type Ordering struct {
	Orderings []portal.Ordering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return
	}

	for _, field := range strings.Split(val, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		ord.Orderings = append(ord.Orderings, portal.Ordering{Field: field, Ascending: !descending})
	}
}
