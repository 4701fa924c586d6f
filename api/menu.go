package api

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nlopes/slack"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mensaplan/mensa"
)

var euroPrinter = message.NewPrinter(language.German)

func formatEuro(price float64) string {
	return euroPrinter.Sprintf("%.2f €", price)
}

func mealText(meal mensa.Meal) string {
	return fmt.Sprintf("*%s*\nPrice\n\tStudents: *%s*\n\tEmployee: *%s*\n\tGuest: *%s*",
		meal.Name,
		formatEuro(meal.Price.Student),
		formatEuro(meal.Price.Employee),
		formatEuro(meal.Price.Guest),
	)
}

// renderMenu turns fetched meals into a block message: header, divider,
// then one section plus one ingredient context block per meal. An empty
// meal list renders a single "No meals" section.
func (s *Service) renderMenu(ctx context.Context, meals []mensa.Meal, lang string, day time.Time) []slack.Block {
	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.PlainTextType, "Meal for "+day.Format("Mon Jan 02 2006"), false, false), nil, nil),
		slack.NewDividerBlock(),
	}

	if len(meals) == 0 {
		return append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*No meals*", false, false), nil, nil))
	}

	images := s.lookupMealImages(ctx, meals)

	for i, meal := range meals {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, mealText(meal), false, false),
			nil,
			slack.NewAccessory(slack.NewImageBlockElement(images[i], meal.Name)),
		))

		ingredients := make([]string, 0, len(meal.Ingredients))
		for _, ingredient := range meal.Ingredients {
			ingredients = append(ingredients, ingredient.Name.In(lang))
		}
		text := strings.Join(ingredients, ", ")
		if text == "" {
			text = "No ingredients"
		}
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject(slack.PlainTextType, text, false, false)))
	}

	return blocks
}

// lookupMealImages fans out one image search per meal and joins the results
// in meal order. A failed or empty lookup falls back to the placeholder and
// never affects another meal's slot.
func (s *Service) lookupMealImages(ctx context.Context, meals []mensa.Meal) []string {
	images := make([]string, len(meals))

	var wg sync.WaitGroup
	for i, meal := range meals {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			urls, err := s.qwant.SearchImages(ctx, name, 1)
			if err != nil {
				logger.Warn("image search failed", "meal", name, "err", err)
			}
			if err != nil || len(urls) == 0 || urls[0] == "" {
				images[i] = placeholderImageURL
				return
			}
			images[i] = urls[0]
		}(i, meal.Name)
	}
	wg.Wait()

	return images
}
