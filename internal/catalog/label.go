package catalog

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const resultsCountKey = "catalog.results_count"

func init() {
	lang := language.English

	err := message.Set(lang, resultsCountKey, plural.Selectf(1, "%d",
		"=1", "Showing %d book",
		plural.Other, "Showing %d books",
	))
	if err != nil {
		panic(err)
	}
}

// ResultsLabel is the result counter shown above the book grid.
func ResultsLabel(count int) string {
	return message.NewPrinter(language.English).Sprintf(resultsCountKey, count)
}
