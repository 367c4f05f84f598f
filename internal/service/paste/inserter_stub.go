//go:build !windows

package paste

import "errors"

type stubInserter struct{}

func newInserter() Inserter { return &stubInserter{} }

func (s *stubInserter) Paste() error {
	return errors.New("paste: simulated input unavailable on this platform")
}
