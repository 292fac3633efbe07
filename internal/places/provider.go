// Package places extracts real-world place names from book descriptions via
// an LLM provider, as an optional supplement to offline keyword detection.
package places

import (
	"context"
	"fmt"
	"strings"
)

// Config represents the configuration for one extraction call.
type Config struct {
	Model       string
	Temperature float64
	Text        string
}

// Provider defines the interface for an LLM place-extraction provider.
type Provider interface {
	ExtractPlaces(ctx context.Context, config Config) ([]string, error)
}

// ForName returns the provider for a name ("gemini" or "ollama").
func ForName(name string) (Provider, error) {
	switch name {
	case "gemini":
		return NewGemini(), nil
	case "ollama":
		return NewOllama(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
}

// prompt wraps the book text in the extraction instruction. The response
// contract keeps parsing trivial: comma-separated place names or NONE.
func prompt(text string) string {
	return "List the real-world countries, cities and regions this book text is set in or about. " +
		"Respond with a comma-separated list of place names only, or NONE if there are none.\n\n" + text
}

// parsePlaces splits a provider response into clean place name strings.
func parsePlaces(response string) []string {
	response = strings.TrimSpace(response)
	if response == "" || strings.EqualFold(response, "none") {
		return nil
	}

	var places []string
	for _, line := range strings.Split(response, "\n") {
		for _, part := range strings.Split(line, ",") {
			place := strings.Trim(strings.TrimSpace(part), "-*• .")
			if place == "" || strings.EqualFold(place, "none") {
				continue
			}
			places = append(places, place)
		}
	}
	return places
}
