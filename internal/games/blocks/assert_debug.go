//go:build debug

package blocks

// debugAssertions turns unreachable piece states into panics.
const debugAssertions = true
