package mock

import "github.com/fwojciec/showscout"

var _ showscout.ImageEncoder = (*ImageEncoder)(nil)

// ImageEncoder is a mock implementation of showscout.ImageEncoder.
type ImageEncoder struct {
	WriteVariantsFn func(screenshot []byte, hostname string) (string, error)
}

func (e *ImageEncoder) WriteVariants(screenshot []byte, hostname string) (string, error) {
	return e.WriteVariantsFn(screenshot, hostname)
}
