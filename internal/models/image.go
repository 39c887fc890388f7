package models

// Image represents a stored image file.
type Image struct {
	Name string
	Data []byte
}

// ImageNaming describes how stored image files are named.
type ImageNaming string

const (
	// ImageNamingHash names files after the SHA-256 digest of their content.
	ImageNamingHash ImageNaming = "hash"
	// ImageNamingOriginal keeps the filename supplied by the client.
	ImageNamingOriginal ImageNaming = "original"
)

// IsValid reports whether n is a known naming strategy.
func (n ImageNaming) IsValid() bool {
	return n == ImageNamingHash || n == ImageNamingOriginal
}
