// Package charset resolves the text encoding of an HTTP body from its Content-Type header
// and decodes bodies into UTF-8 text, falling back to ISO-8859-1 when no usable charset is declared.
package charset
