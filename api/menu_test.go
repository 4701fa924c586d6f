package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nlopes/slack"
	"github.com/stretchr/testify/require"

	"mensaplan/mensa"
)

func sectionText(t *testing.T, block slack.Block) string {
	t.Helper()
	section, ok := block.(*slack.SectionBlock)
	require.True(t, ok, "block is %T, not a section", block)
	return section.Text.Text
}

func contextText(t *testing.T, block slack.Block) string {
	t.Helper()
	ctxBlock, ok := block.(*slack.ContextBlock)
	require.True(t, ok, "block is %T, not a context block", block)
	require.Len(t, ctxBlock.ContextElements.Elements, 1)
	text, ok := ctxBlock.ContextElements.Elements[0].(*slack.TextBlockObject)
	require.True(t, ok)
	return text.Text
}

func countDividers(blocks []slack.Block) int {
	count := 0
	for _, block := range blocks {
		if _, ok := block.(*slack.DividerBlock); ok {
			count++
		}
	}
	return count
}

var testDay = time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)

func TestRenderMenuEmpty(t *testing.T) {
	service, _, _ := newTestService(t, "http://mensa.invalid", "http://qwant.invalid")

	blocks := service.renderMenu(context.Background(), nil, "en", testDay)

	require.Len(t, blocks, 3)
	require.Equal(t, "Meal for Sun Aug 02 2026", sectionText(t, blocks[0]))
	require.Equal(t, 1, countDividers(blocks))
	require.Equal(t, "*No meals*", sectionText(t, blocks[2]))
}

func TestRenderMenuMeals(t *testing.T) {
	qwantSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Schnitzel" {
			w.Write([]byte(`{"status":"success","data":{"result":{"items":[{"media":"https://img.example/schnitzel.jpg"}]}}}`))
			return
		}
		// every other lookup fails hard
		w.Write([]byte("boom"))
	}))
	defer qwantSrv.Close()

	service, _, _ := newTestService(t, "http://mensa.invalid", qwantSrv.URL)

	meals := []mensa.Meal{
		{
			Name: "Schnitzel",
			Ingredients: []mensa.Ingredient{
				{Key: "pork", Name: mensa.Translation{De: "Schwein", En: "Pork"}},
				{Key: "gluten", Name: mensa.Translation{De: "Gluten", En: "Gluten"}},
			},
			Price: mensa.Price{Student: 1.9, Employee: 2.9, Guest: 3.9},
		},
		{
			Name:  "Eintopf",
			Price: mensa.Price{Student: 1.5, Employee: 2.5, Guest: 3.5},
		},
	}

	blocks := service.renderMenu(context.Background(), meals, "de", testDay)

	// header + divider + two (section, context) pairs
	require.Len(t, blocks, 6)
	require.Equal(t, 1, countDividers(blocks))

	schnitzel, ok := blocks[2].(*slack.SectionBlock)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(schnitzel.Text.Text, "*Schnitzel*"))
	require.Contains(t, schnitzel.Text.Text, "Students: *1,90 €*")
	require.Contains(t, schnitzel.Text.Text, "Employee: *2,90 €*")
	require.Contains(t, schnitzel.Text.Text, "Guest: *3,90 €*")
	require.Equal(t, "https://img.example/schnitzel.jpg", schnitzel.Accessory.ImageElement.ImageURL)

	require.Equal(t, "Schwein, Gluten", contextText(t, blocks[3]))

	// the failed image lookup only affects its own meal
	eintopf, ok := blocks[4].(*slack.SectionBlock)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(eintopf.Text.Text, "*Eintopf*"))
	require.Equal(t, placeholderImageURL, eintopf.Accessory.ImageElement.ImageURL)

	require.Equal(t, "No ingredients", contextText(t, blocks[5]))
}

func TestRenderMenuSectionCountMatchesMeals(t *testing.T) {
	service, _, _ := newTestService(t, "http://mensa.invalid", "http://qwant.invalid")

	meals := make([]mensa.Meal, 5)
	for i := range meals {
		meals[i] = mensa.Meal{Name: "Gericht"}
	}

	blocks := service.renderMenu(context.Background(), meals, "en", testDay)
	// every image lookup fails against the invalid host, no meal is dropped
	require.Len(t, blocks, 2+2*len(meals))
}

func TestFormatEuro(t *testing.T) {
	require.Equal(t, "1,90 €", formatEuro(1.9))
	require.Equal(t, "12,00 €", formatEuro(12))
}
