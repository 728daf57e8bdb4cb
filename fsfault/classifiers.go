package fsfault

import (
	"io/fs"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/expected/classify"
	"github.com/jmgilman/go/expected/errors"
	"github.com/minio/minio-go/v7"
)

// storageCodes maps S3 error codes returned by MinIO to kinds.
var storageCodes = map[string]Kind{
	"NoSuchKey":    NoSuchKey,
	"NoSuchBucket": NoSuchBucket,
	"AccessDenied": AccessDenied,
}

// Classifiers returns the filesystem classifiers in match order: errno
// first, then io/fs sentinels, go-billy sentinels and MinIO responses.
func Classifiers() []classify.Entry {
	return []classify.Entry{
		{Name: "fsfault/errno", Classifier: classify.Match(errno)},
		{Name: "fsfault/not-exist", Classifier: classify.Sentinel(fs.ErrNotExist, errors.Make(NotExist))},
		{Name: "fsfault/exist", Classifier: classify.Sentinel(fs.ErrExist, errors.Make(Exist))},
		{Name: "fsfault/permission", Classifier: classify.Sentinel(fs.ErrPermission, errors.Make(Permission))},
		{Name: "fsfault/closed", Classifier: classify.Sentinel(fs.ErrClosed, errors.Make(Closed))},
		{Name: "fsfault/invalid", Classifier: classify.Sentinel(fs.ErrInvalid, errors.Make(Invalid))},
		{Name: "fsfault/read-only", Classifier: classify.Sentinel(billy.ErrReadOnly, errors.Make(ReadOnly))},
		{Name: "fsfault/not-supported", Classifier: classify.Sentinel(billy.ErrNotSupported, errors.Make(NotSupported))},
		{Name: "fsfault/crossed-boundary", Classifier: classify.Sentinel(billy.ErrCrossedBoundary, errors.Make(CrossedBoundary))},
		{Name: "fsfault/minio", Classifier: classify.Match(storageResponse)},
	}
}

// Register appends Classifiers to chain.
func Register(chain *classify.Chain) error {
	return chain.AppendAll(Classifiers()...)
}

func errno(e syscall.Errno) (errors.Code, bool) {
	if e == 0 {
		return errors.Code{}, false
	}
	return Errno(e), true
}

func storageResponse(resp minio.ErrorResponse) (errors.Code, bool) {
	kind, ok := storageCodes[resp.Code]
	if !ok {
		return errors.Code{}, false
	}
	return errors.Make(kind), true
}
