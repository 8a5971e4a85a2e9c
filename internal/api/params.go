package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// defaultListLimit is applied when the limit query parameter is absent.
const defaultListLimit = "20"

// parseLimit reads the limit query parameter for list endpoints. Absent means
// 20. Non-integer or negative values are rejected (ok is false); an explicit
// 0 is returned as-is and handlers answer it with an empty list.
func parseLimit(c *gin.Context) (int64, bool) {
	raw := c.DefaultQuery("limit", defaultListLimit)
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}
