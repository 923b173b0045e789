package merr

import (
	"io"

	"go.uber.org/multierr"
)

// CloseAndMergeError closes the closer and merges the close error with the
// given error. It is meant to be deferred by functions with a named error return:
//
//	defer func() {
//		errToReturn = merr.CloseAndMergeError(closer, errToReturn)
//	}()
//
// A nil closer is ignored.
func CloseAndMergeError(closer io.Closer, err error) error {
	if closer == nil {
		return err
	}
	return multierr.Append(err, closer.Close())
}
