package middlewares

import (
	"github.com/gin-gonic/gin"
)

const DefaultTenantID = "default"

// คีย์ร้านมาจาก header ที่ client เก็บไว้ใน local storage
// ไม่มี routing อะไรลึกกว่านี้ แค่ scope แถวใน DB
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant := c.GetHeader("X-Tenant-ID")
		if tenant == "" {
			tenant = DefaultTenantID
		}
		c.Set("tenantId", tenant)
		c.Next()
	}
}
