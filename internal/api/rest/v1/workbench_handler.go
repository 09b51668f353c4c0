package v1

import (
	"net/http"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"

	"github.com/gin-gonic/gin"
)

// WorkbenchHandler defines the interface for handling workbench operations
type WorkbenchHandler interface {
	GenerateAESKey(ctx *gin.Context)
	EncryptAES(ctx *gin.Context)
	DecryptAES(ctx *gin.Context)
	GenerateRSAKeys(ctx *gin.Context)
	EncryptRSA(ctx *gin.Context)
	DecryptRSA(ctx *gin.Context)
	Digest(ctx *gin.Context)
	GeneratePassword(ctx *gin.Context)
	Health(ctx *gin.Context)
}

// workbenchHandler struct holds the service
type workbenchHandler struct {
	service workbench.Service
}

// NewWorkbenchHandler creates a new WorkbenchHandler
func NewWorkbenchHandler(service workbench.Service) WorkbenchHandler {
	return &workbenchHandler{
		service: service,
	}
}

// bindAndValidate binds the JSON body into request and runs its validation
func bindAndValidate(ctx *gin.Context, request interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		abortWithBadRequest(ctx, "invalid request body: ", err)
		return false
	}
	if err := request.Validate(); err != nil {
		abortWithBadRequest(ctx, "", err)
		return false
	}
	return true
}

// GenerateAESKey handles the POST request to generate random symmetric key material
// @Summary Generate an AES key
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body GenerateAESKeyRequest true "Key size in bytes"
// @Success 201 {object} GeneratedKeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/keys [post]
func (handler *workbenchHandler) GenerateAESKey(ctx *gin.Context) {
	var request GenerateAESKeyRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	key, err := handler.service.GenerateSymmetricKey(ctx.Request.Context(), request.SizeOrDefault())
	if err != nil {
		abortWithError(ctx, workbench.OpKeyGeneration, err)
		return
	}

	ctx.JSON(http.StatusCreated, GeneratedKeyResponse{
		Base64: key.Base64,
		Hex:    key.Hex,
		Size:   key.Size,
	})
}

// EncryptAES handles the POST request to encrypt a message with AES-GCM
// @Summary Encrypt a message with AES-GCM
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body AESEncryptRequest true "Base64 key and message"
// @Success 200 {object} CiphertextResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/encrypt [post]
func (handler *workbenchHandler) EncryptAES(ctx *gin.Context) {
	var request AESEncryptRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	blob, err := handler.service.EncryptSymmetric(ctx.Request.Context(), request.Key, request.Message)
	if err != nil {
		abortWithError(ctx, workbench.OpEncryption, err)
		return
	}

	ctx.JSON(http.StatusOK, CiphertextResponse{Ciphertext: blob})
}

// DecryptAES handles the POST request to decrypt an AES-GCM blob
// @Summary Decrypt an AES-GCM blob
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body AESDecryptRequest true "Base64 key and ciphertext"
// @Success 200 {object} PlaintextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /aes/decrypt [post]
func (handler *workbenchHandler) DecryptAES(ctx *gin.Context) {
	var request AESDecryptRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	plaintext, err := handler.service.DecryptSymmetric(ctx.Request.Context(), request.Key, request.Ciphertext)
	if err != nil {
		abortWithError(ctx, workbench.OpDecryption, err)
		return
	}

	ctx.JSON(http.StatusOK, PlaintextResponse{Plaintext: plaintext})
}

// GenerateRSAKeys handles the POST request to generate an RSA key pair
// @Summary Generate an RSA key pair
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body GenerateRSAKeysRequest true "Modulus size in bits"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /rsa/keys [post]
func (handler *workbenchHandler) GenerateRSAKeys(ctx *gin.Context) {
	var request GenerateRSAKeysRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	pair, err := handler.service.GenerateKeyPair(ctx.Request.Context(), request.KeySize)
	if err != nil {
		abortWithError(ctx, workbench.OpKeyGeneration, err)
		return
	}

	ctx.JSON(http.StatusCreated, KeyPairResponse{
		PublicKey:  pair.PublicKeyPEM,
		PrivateKey: pair.PrivateKeyPEM,
		KeySize:    pair.KeySize,
	})
}

// EncryptRSA handles the POST request to encrypt a message with RSA-OAEP
// @Summary Encrypt a message with RSA-OAEP
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSAEncryptRequest true "PEM public key and message"
// @Success 200 {object} CiphertextResponse
// @Failure 400 {object} ErrorResponse
// @Router /rsa/encrypt [post]
func (handler *workbenchHandler) EncryptRSA(ctx *gin.Context) {
	var request RSAEncryptRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	blob, err := handler.service.EncryptAsymmetric(ctx.Request.Context(), request.PublicKey, request.Message)
	if err != nil {
		abortWithError(ctx, workbench.OpEncryption, err)
		return
	}

	ctx.JSON(http.StatusOK, CiphertextResponse{Ciphertext: blob})
}

// DecryptRSA handles the POST request to decrypt an RSA-OAEP blob
// @Summary Decrypt an RSA-OAEP blob
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSADecryptRequest true "PEM private key and ciphertext"
// @Success 200 {object} PlaintextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /rsa/decrypt [post]
func (handler *workbenchHandler) DecryptRSA(ctx *gin.Context) {
	var request RSADecryptRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	plaintext, err := handler.service.DecryptAsymmetric(ctx.Request.Context(), request.PrivateKey, request.Ciphertext)
	if err != nil {
		abortWithError(ctx, workbench.OpDecryption, err)
		return
	}

	ctx.JSON(http.StatusOK, PlaintextResponse{Plaintext: plaintext})
}

// Digest handles the POST request to hash a message
// @Summary Compute a SHA digest
// @Tags Utilities
// @Accept json
// @Produce json
// @Param requestBody body DigestRequest true "Algorithm and message"
// @Success 200 {object} DigestResponse
// @Failure 400 {object} ErrorResponse
// @Router /digests [post]
func (handler *workbenchHandler) Digest(ctx *gin.Context) {
	var request DigestRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	algorithm := request.AlgorithmOrDefault()
	digest, err := handler.service.Digest(ctx.Request.Context(), algorithm, []byte(request.Message))
	if err != nil {
		abortWithError(ctx, workbench.OpDigest, err)
		return
	}

	ctx.JSON(http.StatusOK, DigestResponse{Algorithm: algorithm, Digest: digest})
}

// GeneratePassword handles the POST request to generate a password
// @Summary Generate a random password
// @Tags Utilities
// @Accept json
// @Produce json
// @Param requestBody body PasswordRequest true "Password policy"
// @Success 200 {object} PasswordResponse
// @Failure 400 {object} ErrorResponse
// @Router /passwords [post]
func (handler *workbenchHandler) GeneratePassword(ctx *gin.Context) {
	var request PasswordRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	password, err := handler.service.GeneratePassword(ctx.Request.Context(), request.Policy())
	if err != nil {
		abortWithError(ctx, workbench.OpPasswordGeneration, err)
		return
	}

	ctx.JSON(http.StatusOK, PasswordResponse{Password: password})
}

// Health handles the GET request reporting liveness
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (handler *workbenchHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
