// Package buffer provides a fixed-length float64 sample block for block-based
// analysis. A Buffer is sized once and then overwritten wholesale with each
// incoming block; it never grows, shrinks or wraps around.
package buffer
