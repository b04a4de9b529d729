// Package drm holds the fourcc pixel-format codes used to tag
// decoration buffers requested from the embedding application.
package drm

//func fourccCode(a, b, c, d uint32) uint32 {
//	return a | (b << 8) | (c << 16) | (d << 24)
//}

const (
	FormatARGB8888 = 'A' | ('R' << 8) | ('2' << 16) | ('4' << 24)
	FormatXRGB8888 = 'X' | ('R' << 8) | ('2' << 16) | ('4' << 24)

	FormatBigEndian = 1 << 31
)
