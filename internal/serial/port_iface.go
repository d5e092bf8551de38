package serial

// Port abstracts the underlying serial library for testability. Two
// backends implement it: tarm/serial (default) and go.bug.st/serial
// (build tag "bugst"), selected at compile time so callers never branch
// on which one is linked in.
type Port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}
