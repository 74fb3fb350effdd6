// Package templates provides embedded starter templates for mockdata init.
package templates

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.yaml *.json
var templateFS embed.FS

// Template represents a starter template.
type Template struct {
	ID          string
	Name        string
	Description string
	Filename    string
}

// AvailableTemplates returns all available starter templates.
var AvailableTemplates = []Template{
	{
		ID:          "user",
		Name:        "User",
		Description: "User record with names, contact data and value rules",
		Filename:    "user.yaml",
	},
	{
		ID:          "order",
		Name:        "Order",
		Description: "Order with line items, patterns and path references",
		Filename:    "order.yaml",
	},
	{
		ID:          "blog",
		Name:        "Blog",
		Description: "Blog posts with incrementing ids and step cycling (JSON)",
		Filename:    "blog.json",
	},
}

// Get returns the template content by ID.
func Get(id string) ([]byte, error) {
	t, err := GetTemplate(id)
	if err != nil {
		return nil, err
	}
	return templateFS.ReadFile(t.Filename)
}

// GetTemplate returns the Template metadata by ID.
func GetTemplate(id string) (*Template, error) {
	for i := range AvailableTemplates {
		if strings.EqualFold(AvailableTemplates[i].ID, id) {
			return &AvailableTemplates[i], nil
		}
	}
	return nil, fmt.Errorf("unknown template: %s", id)
}

// List returns all template IDs sorted alphabetically.
func List() []string {
	ids := make([]string, len(AvailableTemplates))
	for i, t := range AvailableTemplates {
		ids[i] = t.ID
	}
	sort.Strings(ids)
	return ids
}

// FormatList returns a formatted string listing all available templates.
func FormatList() string {
	var sb strings.Builder
	sb.WriteString("Available templates:\n\n")

	maxLen := 0
	for _, t := range AvailableTemplates {
		if len(t.ID) > maxLen {
			maxLen = len(t.ID)
		}
	}

	for _, t := range AvailableTemplates {
		fmt.Fprintf(&sb, "  %-*s  %s\n", maxLen, t.ID, t.Description)
	}

	sb.WriteString("\nUsage:\n")
	sb.WriteString("  mockdata init <name>\n")
	sb.WriteString("  mockdata init order -o order.yaml\n")

	return sb.String()
}

// Exists checks if a template ID exists.
func Exists(id string) bool {
	_, err := GetTemplate(id)
	return err == nil
}
