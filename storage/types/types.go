package types

import "io"

// UnknownSize marks an Object whose body length is not known up front.
const UnknownSize int64 = -1

// Object is a single upload target. It is built per call and discarded once
// the backend returns.
type Object struct {
	Bucket      string
	Key         string
	ContentType string
	Body        io.Reader
	Size        int64
}
