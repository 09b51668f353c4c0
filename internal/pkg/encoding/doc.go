// Package encoding converts between raw bytes, Base64 text and PEM text.
//
// It is shared by the symmetric and asymmetric codecs. PEM parsing is deliberately
// permissive: any dash-delimited header or footer is dropped together with all
// whitespace, and the remaining text is treated as the Base64 body.
package encoding
