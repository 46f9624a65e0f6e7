//go:build debug

package logger

const buildVerbose = true
