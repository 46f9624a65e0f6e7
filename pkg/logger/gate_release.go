//go:build !debug

package logger

const buildVerbose = false
