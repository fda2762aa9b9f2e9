//go:build !profile

package profiler

import "io"

// Stubbed no-op versions when the "profile" build tag is not set.

const Enabled = false

func Start(name string) func() { return func() {} }

func Reset() {}

func Report(w io.Writer) error { return nil }
