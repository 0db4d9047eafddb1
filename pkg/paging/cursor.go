// Package paging implements continuation cursors for paginated list
// envelopes and a pager that follows them.
package paging

// Continuable is implemented by every paginated list envelope.
// ContinuationToken reports the opaque token of the next page, or false when
// the page is the last one. It never performs I/O.
type Continuable interface {
	ContinuationToken() (string, bool)
}

// EmptyToken selects how an envelope treats a present but empty next link.
type EmptyToken int

const (
	// EmptyEndsPaging treats "" the same as an absent link.
	EmptyEndsPaging EmptyToken = iota
	// EmptyIsToken passes "" through as a token to follow.
	EmptyIsToken
	// SinglePage never continues; the envelope has no link field.
	SinglePage
)

func (e EmptyToken) String() string {
	switch e {
	case EmptyEndsPaging:
		return "empty-ends-paging"
	case EmptyIsToken:
		return "empty-is-token"
	case SinglePage:
		return "single-page"
	default:
		return "unknown"
	}
}

// Policy is the continuation rule of one list envelope type.
type Policy struct {
	// Family names the envelope, e.g. "purview.DataSourceList".
	Family string
	Empty  EmptyToken
	// Review is set when the service contract for an empty token is unclear
	// and the chosen behaviour needs a human decision.
	Review string
}

// Next applies the policy to an optional next link field.
func (p Policy) Next(link *string) (string, bool) {
	if p.Empty == SinglePage || link == nil {
		return "", false
	}
	if *link == "" && p.Empty == EmptyEndsPaging {
		return "", false
	}
	return *link, true
}

// Required applies the policy to a next link the service always sends.
func (p Policy) Required(link string) (string, bool) {
	return p.Next(&link)
}

// NeedsReview reports whether the empty-token behaviour is flagged.
func (p Policy) NeedsReview() bool {
	return p.Review != ""
}
