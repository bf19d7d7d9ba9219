package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fieldops/internal/domain"
)

// ContextKeyTenantID is the gin context key holding the request's tenant id.
const ContextKeyTenantID = "tenant_id"

// TenantContext extracts the tenant id from the X-Tenant-ID header and stores
// it in the request context. Authentication happens upstream at the gateway;
// this service only needs the tenant scope every query is bound to.
func TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Tenant-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "TENANT_REQUIRED", "message": "X-Tenant-ID header required"},
			})
			return
		}
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "TENANT_INVALID", "message": "X-Tenant-ID must be a valid UUID"},
			})
			return
		}
		c.Set(ContextKeyTenantID, tenantID)
		c.Next()
	}
}

// GetTenantID returns the tenant id stored by TenantContext.
func GetTenantID(c *gin.Context) (uuid.UUID, error) {
	v, exists := c.Get(ContextKeyTenantID)
	if !exists {
		return uuid.Nil, domain.ErrTenantRequired
	}
	tenantID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, domain.ErrTenantRequired
	}
	return tenantID, nil
}
