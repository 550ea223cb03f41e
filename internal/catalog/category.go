package catalog

import (
	"slices"
	"strings"
)

// categoryNames maps endpoint type tags to display categories. Tags without
// an entry fall back to a title-cased form of the tag itself.
var categoryNames = map[string]string{
	"openai":           "Chat",
	"gemini":           "Chat",
	"image-generation": "Image",
}

// DetectCategory converts a model's endpoint type tags into a comma separated
// category label, collapsing duplicates to their first occurrence. An empty
// tag list yields an empty string.
func DetectCategory(endpointTypes []string) string {
	var categories []string
	for _, tag := range endpointTypes {
		name, ok := categoryNames[tag]
		if !ok {
			name = titleCase(tag)
		}
		if !slices.Contains(categories, name) {
			categories = append(categories, name)
		}
	}
	return strings.Join(categories, ", ")
}
