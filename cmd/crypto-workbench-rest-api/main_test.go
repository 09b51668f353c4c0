//go:build unit
// +build unit

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/MGTheTrain/crypto-workbench/internal/api/rest/v1"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}, out interface{}) int {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

func TestRouter_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.RestConfig{Port: "8080", Workbench: *config.DefaultWorkbenchSettings()}
	service, err := initializeService(&cfg.Workbench, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	r := newRouter(cfg, service)

	t.Run("AES", func(t *testing.T) {
		var key v1.GeneratedKeyResponse
		require.Equal(t, http.StatusCreated, postJSON(t, r, "/api/v1/cwb/aes/keys", map[string]int{"key_size": 16}, &key))

		var sealed v1.CiphertextResponse
		require.Equal(t, http.StatusOK, postJSON(t, r, "/api/v1/cwb/aes/encrypt",
			v1.AESEncryptRequest{Key: key.Base64, Message: "hello"}, &sealed))

		var opened v1.PlaintextResponse
		require.Equal(t, http.StatusOK, postJSON(t, r, "/api/v1/cwb/aes/decrypt",
			v1.AESDecryptRequest{Key: key.Base64, Ciphertext: sealed.Ciphertext}, &opened))
		assert.Equal(t, "hello", opened.Plaintext)

		var failure v1.ErrorResponse
		code := postJSON(t, r, "/api/v1/cwb/aes/encrypt",
			v1.AESEncryptRequest{Key: "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", Message: "hello"}, &failure)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, failure.Message, "Encryption failed: key import failed")
	})

	t.Run("RSA", func(t *testing.T) {
		var pair v1.KeyPairResponse
		require.Equal(t, http.StatusCreated, postJSON(t, r, "/api/v1/cwb/rsa/keys", map[string]int{"key_size": 1024}, &pair))
		assert.Equal(t, 1024, pair.KeySize)

		var sealed v1.CiphertextResponse
		require.Equal(t, http.StatusOK, postJSON(t, r, "/api/v1/cwb/rsa/encrypt",
			v1.RSAEncryptRequest{PublicKey: pair.PublicKey, Message: "hello"}, &sealed))

		var opened v1.PlaintextResponse
		require.Equal(t, http.StatusOK, postJSON(t, r, "/api/v1/cwb/rsa/decrypt",
			v1.RSADecryptRequest{PrivateKey: pair.PrivateKey, Ciphertext: sealed.Ciphertext}, &opened))
		assert.Equal(t, "hello", opened.Plaintext)
	})

	t.Run("Digest", func(t *testing.T) {
		var digest v1.DigestResponse
		require.Equal(t, http.StatusOK, postJSON(t, r, "/api/v1/cwb/digests", v1.DigestRequest{Message: "abc"}, &digest))
		assert.Equal(t, "SHA-256", digest.Algorithm)
		assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digest.Digest)
	})

	t.Run("CORSPreflight", func(t *testing.T) {
		req, _ := http.NewRequest("OPTIONS", "/api/v1/cwb/aes/encrypt", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
