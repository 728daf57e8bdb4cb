package fsfault

import (
	"syscall"

	"github.com/jmgilman/go/expected/errors"
)

// SystemCategory holds operating system error numbers verbatim.
// The value of a code is the errno and its message is the OS text.
var SystemCategory = errors.NewCategory("system", func(value int) string {
	if value == 0 {
		return ""
	}
	return syscall.Errno(value).Error()
})

// Errno returns the system code for an OS error number.
func Errno(e syscall.Errno) errors.Code {
	return errors.MakeCode(SystemCategory, int(e))
}

// Kind enumerates filesystem and object storage faults that carry no errno.
type Kind int

const (
	// NotExist is a missing file, directory, or object.
	NotExist Kind = iota + 1

	// Exist is a file or directory that already exists.
	Exist

	// Permission is a denied filesystem operation.
	Permission

	// Closed is an operation on a closed file.
	Closed

	// Invalid is an invalid argument to a filesystem operation.
	Invalid

	// ReadOnly is a write to a read-only filesystem.
	ReadOnly

	// NotSupported is an operation the filesystem does not implement.
	NotSupported

	// CrossedBoundary is a path escaping a chroot.
	CrossedBoundary

	// NoSuchBucket is a missing object storage bucket.
	NoSuchBucket

	// NoSuchKey is a missing object storage key.
	NoSuchKey

	// AccessDenied is a denied object storage request.
	AccessDenied
)

// Category is the category of errno-less filesystem faults.
var Category = errors.NewCategory("filesystem", errors.MessageTable(map[int]string{
	int(NotExist):        "file does not exist",
	int(Exist):           "file already exists",
	int(Permission):      "permission denied",
	int(Closed):          "file already closed",
	int(Invalid):         "invalid argument",
	int(ReadOnly):        "read-only filesystem",
	int(NotSupported):    "operation not supported",
	int(CrossedBoundary): "chroot boundary crossed",
	int(NoSuchBucket):    "bucket does not exist",
	int(NoSuchKey):       "object does not exist",
	int(AccessDenied):    "access denied",
}))

// ErrorCode implements errors.Coder.
func (k Kind) ErrorCode() errors.Code {
	return errors.MakeCode(Category, int(k))
}
