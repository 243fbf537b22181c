package view

import (
	"context"
	"strconv"
	"strings"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatRows renders a list of 1-based sheet rows for display.
func FormatRows(rows []int) string {
	if len(rows) == 0 {
		return "-"
	}

	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strconv.Itoa(r)
	}

	return strings.Join(parts, ", ")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
