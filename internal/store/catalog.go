// Package store handles word catalog files and SQLite persistence.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vocadrill/vocadrill/internal/model"
)

// LoadCatalog reads a word catalog from a CSV file with a
// word,meaning,phonetic,example header. Phonetic and example are optional.
// Duplicate headwords keep the first occurrence.
func LoadCatalog(path string) ([]model.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only catalog.
			_ = cerr
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	wordIdx, ok := col["word"]
	if !ok {
		return nil, fmt.Errorf("catalog is missing the word column")
	}
	meaningIdx, ok := col["meaning"]
	if !ok {
		return nil, fmt.Errorf("catalog is missing the meaning column")
	}

	var words []model.Word
	seen := map[model.WordID]struct{}{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}
		text := strings.TrimSpace(field(record, wordIdx))
		if text == "" {
			continue
		}
		id := model.WordID(text)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		words = append(words, model.Word{
			ID:       id,
			Text:     text,
			Meaning:  strings.TrimSpace(field(record, meaningIdx)),
			Phonetic: strings.TrimSpace(field(record, col["phonetic"])),
			Example:  strings.TrimSpace(field(record, col["example"])),
		})
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return words, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

var sampleWords = []model.Word{
	{Text: "apple", Meaning: "n. 苹果", Phonetic: "/ˈæpəl/", Example: "I like to eat an apple every day."},
	{Text: "beautiful", Meaning: "adj. 美丽的，漂亮的", Phonetic: "/ˈbjuːtɪfəl/", Example: "She is a beautiful girl."},
	{Text: "computer", Meaning: "n. 计算机，电脑", Phonetic: "/kəmˈpjuːtər/", Example: "I use my computer for work and entertainment."},
	{Text: "difficult", Meaning: "adj. 困难的，艰难的", Phonetic: "/ˈdɪfɪkəlt/", Example: "This math problem is very difficult."},
	{Text: "environment", Meaning: "n. 环境", Phonetic: "/ɪnˈvaɪrənmənt/", Example: "We should protect our environment."},
	{Text: "fantastic", Meaning: "adj. 极好的，了不起的", Phonetic: "/fænˈtæstɪk/", Example: "The movie was fantastic!"},
	{Text: "government", Meaning: "n. 政府", Phonetic: "/ˈɡʌvərnmənt/", Example: "The government made a new policy."},
	{Text: "happiness", Meaning: "n. 幸福，快乐", Phonetic: "/ˈhæpɪnəs/", Example: "Money cannot buy happiness."},
}

// WriteSampleCatalog creates a starter catalog so a first run has something
// to drill.
func WriteSampleCatalog(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create catalog dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"word", "meaning", "phonetic", "example"}); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write catalog header: %w", err)
	}
	for _, w := range sampleWords {
		if err := writer.Write([]string{w.Text, w.Meaning, w.Phonetic, w.Example}); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to write catalog row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush catalog: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close catalog: %w", err)
	}
	return nil
}
