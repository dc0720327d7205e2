// Package docs embeds the ffc user documentation, split in topics.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated
// together. "*" stands for all the topics.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			var err error
			if names, err = GetAllTopics(); err != nil {
				return "", err
			}
		}
		for _, name := range names {
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of topics, the readme excepted.
func GetAllTopics() ([]string, error) {
	entries, err := fs.ReadDir(docs, ".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		base := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if base == "readme" {
			continue
		}
		topics = append(topics, base)
	}
	slices.Sort(topics)
	return topics, nil
}
