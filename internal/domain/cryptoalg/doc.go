// Package cryptoalg defines the contracts, models and error kinds of the encryption workbench:
// AES-GCM and RSA-OAEP codecs, random key generation, message digests and password generation.
package cryptoalg
