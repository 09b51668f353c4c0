package workbench

// Operation names a user-facing workbench action in failure messages.
type Operation string

const (
	OpKeyGeneration      Operation = "Key generation"
	OpEncryption         Operation = "Encryption"
	OpDecryption         Operation = "Decryption"
	OpDigest             Operation = "Digest"
	OpPasswordGeneration Operation = "Password generation"
)
