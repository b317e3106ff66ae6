package mock

import "github.com/fwojciec/showscout"

var _ showscout.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of showscout.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	return e.ExtractLinksFn(html)
}
