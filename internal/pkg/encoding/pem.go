package encoding

import (
	"fmt"
	"regexp"
	"strings"
)

// pemLineWidth is the number of Base64 characters per PEM body line.
const pemLineWidth = 64

var pemBoundary = regexp.MustCompile(`-----.*-----`)

// ToPem wraps a Base64 body into a PEM envelope labeled "{label} KEY".
func ToPem(base64Body, label string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "-----BEGIN %s KEY-----\n", label)
	for len(base64Body) > pemLineWidth {
		sb.WriteString(base64Body[:pemLineWidth])
		sb.WriteByte('\n')
		base64Body = base64Body[pemLineWidth:]
	}
	if base64Body != "" {
		sb.WriteString(base64Body)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "-----END %s KEY-----", label)
	return sb.String()
}

// FromPem strips header and footer lines and all whitespace and returns the Base64 body.
// The body is not validated.
func FromPem(pemText string) string {
	body := pemBoundary.ReplaceAllString(pemText, "")
	return strings.Join(strings.Fields(body), "")
}
