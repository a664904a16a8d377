package transport

import (
	"errors"
	"io"
	"net/http"

	"github.com/fereidani/httpdecompressor"
)

// NewDecompressor wraps a RoundTripper so that response bodies compressed
// with gzip, deflate, br, or zstd are decompressed transparently, based on
// the Content-Encoding header. Uncompressed responses pass through
// unchanged.
func NewDecompressor(roundTripper http.RoundTripper) http.RoundTripper {
	if roundTripper == nil {
		panic("transport: NewDecompressor called with nil RoundTripper")
	}

	return &decompressor{roundTripper: roundTripper}
}

type decompressor struct {
	roundTripper http.RoundTripper
}

var _ http.RoundTripper = (*decompressor)(nil)

func (d *decompressor) RoundTrip(request *http.Request) (*http.Response, error) {
	rsp, err := d.roundTripper.RoundTrip(request)
	if err != nil {
		return rsp, err
	}

	origBody := rsp.Body

	bodyReader, err := httpdecompressor.Reader(rsp)
	if err != nil {
		return nil, err
	}

	if bodyReader == origBody {
		return rsp, nil
	}

	// Close the decoder before the underlying body so buffered data is
	// flushed while the connection is still usable.
	rsp.Body = &multiReadCloser{
		Reader:  bodyReader,
		closers: []io.Closer{bodyReader, origBody},
	}

	return rsp, nil
}

// multiReadCloser reads from Reader and closes the attached closers in
// order on Close.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var errs []error

	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
