// Package docs embeds the help topics served by the topic command.
package docs

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var topics embed.FS

// GetTopic returns the markdown content of one help topic. A topic name is
// the embedded file name without its .md extension; "readme" is the index.
func GetTopic(topic string) (string, error) {
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates several help topics into one markdown document.
// An unknown name fails the whole call.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
