package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	dictionaryEndpoint = "https://api.dictionaryapi.dev/api/v2/entries/en"
	wikipediaEndpoint  = "https://en.wikipedia.org/api/rest_v1/page/summary"
)

type dictEntry struct {
	Word      string `json:"word"`
	Phonetic  string `json:"phonetic"`
	Phonetics []struct {
		Text string `json:"text"`
	} `json:"phonetics"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
		Synonyms []string `json:"synonyms"`
	} `json:"meanings"`
}

type wikiSummary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

func (p *Pipeline) fetchDictionary(ctx context.Context, word string) ([]dictEntry, error) {
	endpoint := p.dictBase + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating dictionary request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dictionary entry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary returned status %d", resp.StatusCode)
	}
	var entries []dictEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing dictionary response: %w", err)
	}
	return entries, nil
}

func (p *Pipeline) fetchWikipedia(ctx context.Context, word string) (*wikiSummary, error) {
	endpoint := p.wikiBase + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating wikipedia request: %w", err)
	}
	req.Header.Set("User-Agent", "vocadrill/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching wikipedia summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia returned status %d", resp.StatusCode)
	}
	var summary wikiSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("parsing wikipedia response: %w", err)
	}
	return &summary, nil
}

// assembleFallback builds Markdown from whatever free sources answered.
// A fully dry run still returns a usable stub.
func (p *Pipeline) assembleFallback(ctx context.Context, word string, refs []searchRef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", word)

	gotAny := false
	if entries, err := p.fetchDictionary(ctx, word); err == nil && len(entries) > 0 {
		gotAny = true
		b.WriteString(renderDictionary(entries))
	}
	if summary, err := p.fetchWikipedia(ctx, word); err == nil && summary.Extract != "" {
		gotAny = true
		fmt.Fprintf(&b, "\n## Encyclopedia\n%s\n", summary.Extract)
	}
	if len(refs) > 0 {
		gotAny = true
		b.WriteString("\n## Web mentions\n")
		for _, r := range refs {
			fmt.Fprintf(&b, "- **%s** %s\n", r.Title, trim(r.Content, 200))
		}
	}
	if !gotAny {
		b.WriteString("\nNo sources reachable right now. Check the network, or set TAVILY_API_KEY / LLM_API_KEY for richer explanations.\n")
	}

	fmt.Fprintf(&b, "\n---\n_Generated %s_\n", time.Now().Format("2006-01-02 15:04"))
	return b.String()
}

func renderDictionary(entries []dictEntry) string {
	var b strings.Builder
	b.WriteString("\n## Dictionary\n")
	for _, entry := range entries {
		phonetic := entry.Phonetic
		if phonetic == "" {
			for _, ph := range entry.Phonetics {
				if ph.Text != "" {
					phonetic = ph.Text
					break
				}
			}
		}
		if phonetic != "" {
			fmt.Fprintf(&b, "%s\n", phonetic)
		}
		for _, meaning := range entry.Meanings {
			fmt.Fprintf(&b, "\n**%s**\n", meaning.PartOfSpeech)
			for i, def := range meaning.Definitions {
				if i >= 3 {
					break
				}
				fmt.Fprintf(&b, "- %s\n", def.Definition)
				if def.Example != "" {
					fmt.Fprintf(&b, "  _%s_\n", def.Example)
				}
			}
			if len(meaning.Synonyms) > 0 {
				n := len(meaning.Synonyms)
				if n > 6 {
					n = 6
				}
				fmt.Fprintf(&b, "- Synonyms: %s\n", strings.Join(meaning.Synonyms[:n], ", "))
			}
		}
	}
	return b.String()
}
