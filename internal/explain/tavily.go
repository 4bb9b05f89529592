package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const tavilyEndpoint = "https://api.tavily.com/search"

type searchRef struct {
	Title   string
	URL     string
	Content string
}

type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
}

type tavilyResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

func (p *Pipeline) searchTavily(ctx context.Context, word string) ([]searchRef, error) {
	query := fmt.Sprintf("%s meaning and usage; collocations; etymology; synonyms antonyms; example sentences", word)
	body, err := json.Marshal(tavilyRequest{
		APIKey:        p.tavilyKey,
		Query:         query,
		SearchDepth:   "advanced",
		IncludeAnswer: true,
		MaxResults:    6,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tavilyURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching search results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	refs := make([]searchRef, 0, len(parsed.Results)+1)
	if parsed.Answer != "" {
		refs = append(refs, searchRef{Title: "Tavily answer", Content: parsed.Answer})
	}
	for _, r := range parsed.Results {
		refs = append(refs, searchRef{Title: r.Title, URL: r.URL, Content: r.Content})
	}
	return refs, nil
}
