package utils

import "github.com/gin-gonic/gin"

func CurrentTenantID(c *gin.Context) string {
	if v, ok := c.Get("tenantId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentAdminID(c *gin.Context) uint {
	v, _ := c.Get("adminId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}
