package extractor

import "errors"

var (
	// ErrFileNotFound reports a missing resume file.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFormat reports a file extension outside pdf/docx/doc/txt.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrDecode reports a text file none of the supported encodings could decode.
	ErrDecode = errors.New("unable to decode file with supported encodings")

	// ErrNoText reports that extraction produced no usable text at all.
	// Individual field extraction never raises; this is the only parse error.
	ErrNoText = errors.New("no text could be extracted")
)
