// Package convert maps provider recipes onto the local schema.
package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"cookitsimple/entities"
	"cookitsimple/pkg/provider"
)

const (
	defaultTime       = "30 Min"
	defaultDifficulty = "mittel"
	defaultCategory   = "Hauptgerichte"
	defaultServings   = 4
)

// FromExternal maps a provider recipe onto the local schema. It is total:
// missing or odd fields get defaults, never errors. Imported recipes are
// always published and never featured.
func FromExternal(src *provider.ExternalRecipe) entities.Recipe {
	ingredients := make([]string, 0, len(src.Ingredients))
	for _, ing := range src.Ingredients {
		if line := ingredientLine(ing); line != "" {
			ingredients = append(ingredients, line)
		}
	}

	instructions := make([]string, 0, len(src.Steps))
	for _, step := range src.Steps {
		if line := StripHTML(step.Line()); line != "" {
			instructions = append(instructions, line)
		}
	}

	total := src.WorkMinutes + src.CookMinutes + src.RestMinutes
	timeStr := defaultTime
	if total > 0 {
		timeStr = strconv.Itoa(total) + " Min"
	}

	description := StripHTML(src.Subtitle)
	if description == "" {
		description = StripHTML(src.Description)
	}
	if description == "" {
		description = fmt.Sprintf("Ein leckeres Rezept für %s", src.Title)
	}

	difficulty := src.Difficulty
	if difficulty == "" {
		difficulty = defaultDifficulty
	}
	category := src.Category
	if category == "" {
		category = defaultCategory
	}
	servings := src.Servings
	if servings == 0 {
		servings = defaultServings
	}
	var imageURL *string
	if src.ImageURL != "" {
		u := src.ImageURL
		imageURL = &u
	}

	return entities.Recipe{
		Title:        src.Title,
		Slug:         Slugify(src.Title),
		Description:  description,
		Ingredients:  ingredients,
		Instructions: instructions,
		Time:         timeStr,
		Difficulty:   difficulty,
		Category:     category,
		Servings:     servings,
		ImageURL:     imageURL,
		Featured:     false,
		Published:    true,
	}
}

// ingredientLine joins amount, unit and name with single spaces, skipping
// empty parts. Falls back to the bare name if nothing joined.
func ingredientLine(ing provider.Ingredient) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{string(ing.Amount), string(ing.Unit), ing.Name} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if joined := strings.Join(parts, " "); joined != "" {
		return joined
	}
	return strings.TrimSpace(ing.Name)
}

// StripHTML flattens provider-supplied rich text to plain text. Text
// without markup passes through trimmed but otherwise unchanged.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
