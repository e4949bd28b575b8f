package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseIDParam parses a snowflake path parameter. IDs are always positive.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid id %d", id)
	}
	return id, nil
}
