package webgrab

// LinkExtractor produces the link targets present in an HTML document.
type LinkExtractor interface {
	// ExtractLinks returns the anchor href and image src targets of the
	// document in document order, resolved against baseURL, with fragment
	// identifiers stripped and duplicates within the document removed.
	ExtractLinks(body []byte, baseURL string) ([]string, error)
}
