package v1

import (
	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
// Request bodies larger than maxBodyBytes are rejected; zero disables the limit.
func SetupRoutes(r *gin.Engine, service workbench.Service, maxBodyBytes int64) {
	v1 := r.Group(BasePath, RequestID(), LimitBodySize(maxBodyBytes)) // lookup in version file

	handler := NewWorkbenchHandler(service)

	// AES-GCM Routes
	v1.POST("/aes/keys", handler.GenerateAESKey)
	v1.POST("/aes/encrypt", handler.EncryptAES)
	v1.POST("/aes/decrypt", handler.DecryptAES)

	// RSA-OAEP Routes
	v1.POST("/rsa/keys", handler.GenerateRSAKeys)
	v1.POST("/rsa/encrypt", handler.EncryptRSA)
	v1.POST("/rsa/decrypt", handler.DecryptRSA)

	// Utility Routes
	v1.POST("/digests", handler.Digest)
	v1.POST("/passwords", handler.GeneratePassword)

	v1.GET("/health", handler.Health)
}
