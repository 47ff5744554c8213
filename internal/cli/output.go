package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"bookfinder/internal/catalog"
	"bookfinder/internal/entity"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResults(w io.Writer, st catalog.State) {
	if len(st.Books) == 0 {
		fmt.Fprintf(w, "no results for %q\n", st.SearchQuery)
		return
	}

	for _, b := range st.Books {
		fmt.Fprintf(w, "%-14s %s — %s", b.ID, b.Title, b.AuthorsText)
		if b.RatingsCount > 0 {
			fmt.Fprintf(w, " (%.1f/5, %d ratings)", b.AverageRating, b.RatingsCount)
		}
		fmt.Fprintln(w)
	}

	totalPages := (st.TotalItems + st.PageSize - 1) / st.PageSize
	fmt.Fprintf(w, "page %d of %d, %d matches for %q\n",
		st.CurrentPage, totalPages, st.TotalItems, st.SearchQuery)
}

func printBook(w io.Writer, b entity.Book) {
	fmt.Fprintf(w, "%s\n", b.Title)
	fmt.Fprintf(w, "  by %s\n", b.AuthorsText)
	fmt.Fprintf(w, "  category: %s\n", b.PrimaryCategory)
	if b.Publisher != "" {
		fmt.Fprintf(w, "  publisher: %s (%s)\n", b.Publisher, b.PublishedDate)
	}
	if b.PageCount > 0 {
		fmt.Fprintf(w, "  pages: %d, language: %s\n", b.PageCount, b.Language)
	}
	if b.RatingsCount > 0 {
		fmt.Fprintf(w, "  rating: %.1f/5 (%d ratings)\n", b.AverageRating, b.RatingsCount)
	}
	if b.Description != "" {
		fmt.Fprintf(w, "\n%s\n", b.Description)
	}
}

func printReview(w io.Writer, r entity.Review) {
	when := time.UnixMilli(r.Timestamp).Format("2006-01-02 15:04")
	fmt.Fprintf(w, "[%s] %d/5 by %s on book %s (%s)\n  %s\n",
		r.ID, r.Rating, r.Username, r.BookID, when, r.Text)
}
