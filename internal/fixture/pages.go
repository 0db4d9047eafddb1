package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Page is one recorded response of a paginated list. Token is the token the
// client sent to get it; the first page has none.
type Page struct {
	Token *string
	Body  json.RawMessage
}

// Pages is a recorded run of a list operation keyed by request token.
type Pages struct {
	pages []Page
	index map[string]int
	first int
}

type pagesFile struct {
	Pages []struct {
		Token *string     `yaml:"token"`
		Body  interface{} `yaml:"body"`
	} `yaml:"pages"`
}

// LoadPages reads a fixture shaped as
//
//	pages:
//	  - body: {...}
//	  - token: "next"
//	    body: {...}
func LoadPages(path string) (*Pages, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	p, err := ParsePages(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParsePages decodes a page fixture. Exactly one page may omit its token,
// and no two pages may share one.
func ParsePages(data []byte) (*Pages, error) {
	var f pagesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse pages: %w", err)
	}
	if len(f.Pages) == 0 {
		return nil, fmt.Errorf("missing or empty 'pages' field")
	}

	p := &Pages{index: make(map[string]int, len(f.Pages)), first: -1}
	for i, raw := range f.Pages {
		if raw.Body == nil {
			return nil, fmt.Errorf("page %d: missing 'body' field", i)
		}
		v, err := jsonValue(raw.Body)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		body, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}

		if raw.Token == nil {
			if p.first >= 0 {
				return nil, fmt.Errorf("page %d: only the first page may omit 'token'", i)
			}
			p.first = i
		} else {
			if _, dup := p.index[*raw.Token]; dup {
				return nil, fmt.Errorf("page %d: token %q recorded twice", i, *raw.Token)
			}
			p.index[*raw.Token] = i
		}
		p.pages = append(p.pages, Page{Token: raw.Token, Body: body})
	}
	if p.first < 0 {
		return nil, fmt.Errorf("no page without 'token'; the first request sends none")
	}
	return p, nil
}

// Len returns the number of recorded pages.
func (p *Pages) Len() int { return len(p.pages) }

// Body returns the response recorded for token. A nil token selects the
// first page.
func (p *Pages) Body(token *string) (json.RawMessage, error) {
	if token == nil {
		return p.pages[p.first].Body, nil
	}
	i, ok := p.index[*token]
	if !ok {
		return nil, fmt.Errorf("no page recorded for token %q", *token)
	}
	return p.pages[i].Body, nil
}
