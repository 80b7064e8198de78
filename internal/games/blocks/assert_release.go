//go:build !debug

package blocks

const debugAssertions = false
