package pageparse

import "errors"

// ErrUnsupportedFileType is returned for sources whose extension is neither
// html nor css.
var ErrUnsupportedFileType = errors.New("unsupported file type")
