// Package explain builds a word explanation from web sources. The cascade
// is sequential and best-effort: Tavily search feeds an OpenAI-compatible
// model when keys are configured, otherwise free dictionary and
// encyclopedia sources are assembled directly. Each source failure
// degrades to the next; callers get text or a stub, never a hard failure
// for a missing source.
package explain

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Pipeline fetches and assembles explanations.
type Pipeline struct {
	client    *http.Client
	tavilyKey string
	llmKey    string
	llmBase   string
	llmModel  string

	// Source endpoints, overridable in tests.
	tavilyURL string
	dictBase  string
	wikiBase  string
}

const (
	defaultLLMBase  = "https://api.openai.com/v1"
	defaultLLMModel = "gpt-4o-mini"
)

// New constructs a pipeline. API keys are read from the environment:
// TAVILY_API_KEY for search, LLM_API_KEY (or OPENAI_API_KEY) for the model.
func New(llmBase, llmModel string) *Pipeline {
	if llmBase == "" {
		llmBase = defaultLLMBase
	}
	if llmModel == "" {
		llmModel = defaultLLMModel
	}
	llmKey := os.Getenv("LLM_API_KEY")
	if llmKey == "" {
		llmKey = os.Getenv("OPENAI_API_KEY")
	}
	return &Pipeline{
		client:    &http.Client{Timeout: 30 * time.Second},
		tavilyKey: os.Getenv("TAVILY_API_KEY"),
		llmKey:    llmKey,
		llmBase:   strings.TrimRight(llmBase, "/"),
		llmModel:  llmModel,
		tavilyURL: tavilyEndpoint,
		dictBase:  dictionaryEndpoint,
		wikiBase:  wikipediaEndpoint,
	}
}

// Explain produces Markdown for one word. It blocks for the duration of
// the fetch chain; run it off the render path.
func (p *Pipeline) Explain(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", fmt.Errorf("word is empty")
	}

	var refs []searchRef
	if p.tavilyKey != "" {
		if found, err := p.searchTavily(ctx, word); err == nil {
			refs = found
		}
	}

	if p.llmKey != "" {
		if out, err := p.chatComplete(ctx, buildPrompt(word, refs)); err == nil && strings.TrimSpace(out) != "" {
			return withFooter(out, refs), nil
		}
	}

	return p.assembleFallback(ctx, word, refs), nil
}

// buildPrompt asks the model for a compact teaching card, inlining any
// search references.
func buildPrompt(word string, refs []searchRef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain the English word %q for a Chinese-speaking learner.\n", word)
	b.WriteString("Cover: core meanings with 中文释义, pronunciation, 2-3 example sentences, ")
	b.WriteString("common collocations, close synonyms with usage differences, and one memory hook. ")
	b.WriteString("Answer in Markdown, concise sections.\n")
	if len(refs) > 0 {
		b.WriteString("\nWeb references:\n")
		for i, r := range refs {
			fmt.Fprintf(&b, "[%d] %s (%s)\n    %s\n", i+1, r.Title, r.URL, trim(r.Content, 380))
		}
	}
	return b.String()
}

func withFooter(body string, refs []searchRef) string {
	if len(refs) == 0 {
		return body
	}
	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\n---\nSources:\n")
	for i, r := range refs {
		fmt.Fprintf(&b, "- [%d] %s (%s)\n", i+1, r.Title, r.URL)
	}
	return b.String()
}

func trim(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
