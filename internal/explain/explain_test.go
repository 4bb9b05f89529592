package explain

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testPipeline() *Pipeline {
	return &Pipeline{
		client:   &http.Client{Timeout: 5 * time.Second},
		llmBase:  defaultLLMBase,
		llmModel: defaultLLMModel,
	}
}

func TestBuildPromptIncludesWordAndRefs(t *testing.T) {
	refs := []searchRef{
		{Title: "Etymology of apple", URL: "https://example.com/apple", Content: "From Old English æppel."},
	}
	prompt := buildPrompt("apple", refs)
	if !strings.Contains(prompt, `"apple"`) {
		t.Fatalf("prompt missing word: %s", prompt)
	}
	if !strings.Contains(prompt, "example.com/apple") {
		t.Fatalf("prompt missing reference URL: %s", prompt)
	}
	if !strings.Contains(prompt, "Markdown") {
		t.Fatalf("prompt should request markdown: %s", prompt)
	}
}

func TestExplainRejectsEmptyWord(t *testing.T) {
	p := testPipeline()
	if _, err := p.Explain(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty word")
	}
}

func TestFallbackAssemblesDictionaryAndWikipedia(t *testing.T) {
	dict := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"word": "apple",
			"phonetic": "/ˈæpəl/",
			"meanings": [{
				"partOfSpeech": "noun",
				"definitions": [{"definition": "A round fruit.", "example": "She ate an apple."}],
				"synonyms": ["pome"]
			}]
		}]`))
	}))
	defer dict.Close()

	wiki := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title": "Apple", "extract": "The apple is a pomaceous fruit."}`))
	}))
	defer wiki.Close()

	p := testPipeline()
	p.dictBase = dict.URL
	p.wikiBase = wiki.URL

	out, err := p.Explain(context.Background(), "apple")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	for _, want := range []string{"# apple", "/ˈæpəl/", "A round fruit.", "pomaceous", "Synonyms: pome"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFallbackDegradesToStub(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer down.Close()

	p := testPipeline()
	p.dictBase = down.URL
	p.wikiBase = down.URL

	out, err := p.Explain(context.Background(), "zzzunknown")
	if err != nil {
		t.Fatalf("explain should not fail when all sources are down: %v", err)
	}
	if !strings.Contains(out, "No sources reachable") {
		t.Fatalf("expected stub note, got:\n%s", out)
	}
}

func TestWithFooterListsSources(t *testing.T) {
	refs := []searchRef{{Title: "Ref", URL: "https://example.com"}}
	out := withFooter("body", refs)
	if !strings.Contains(out, "Sources:") || !strings.Contains(out, "example.com") {
		t.Fatalf("footer missing: %s", out)
	}
	if withFooter("body", nil) != "body" {
		t.Fatalf("no refs should leave body untouched")
	}
}
