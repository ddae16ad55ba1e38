package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// scaffoldComments are attached above the matching keys, by dotted path.
var scaffoldComments = map[string]string{
	"quiz.block_language": "Info string of fenced blocks holding quiz payloads.",
	"quiz.seed":           "Fixed shuffle seed; 0 picks a random seed per run.",
	"daily.flag":          "Frontmatter key that opts a document into the daily quiz.",
	"daily.concurrency":   "Documents read in parallel.",
	"ui.mode":             "auto, live, or plain",
	"log.level":           "debug, info, warn, or error",
}

// renderScaffoldConfig encodes cfg as YAML with explanatory comments.
func renderScaffoldConfig(cfg Config) (string, error) {
	var root yaml.Node
	if err := root.Encode(cfg); err != nil {
		return "", err
	}
	annotate(&root, "")

	var builder strings.Builder
	encoder := yaml.NewEncoder(&builder)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func annotate(node *yaml.Node, prefix string) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		path := key.Value
		if prefix != "" {
			path = prefix + "." + key.Value
		}
		if comment, ok := scaffoldComments[path]; ok {
			key.HeadComment = comment
		}
		annotate(value, path)
	}
}
