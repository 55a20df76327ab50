package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/nikolayk812/bookverse/internal/cart"
	"github.com/nikolayk812/bookverse/internal/catalog"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
)

func badgeObserver(out io.Writer) port.CountObserver {
	return port.CountObserverFunc(func(_ context.Context, count int) {
		if label, ok := cart.Badge(count); ok {
			fmt.Fprintf(out, "Cart (%s)\n", label)
			return
		}
		fmt.Fprintln(out, "Cart")
	})
}

func printBooks(out io.Writer, result catalog.Result) error {
	if result.Empty() {
		_, err := fmt.Fprintln(out, "No books found")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tGENRE\tRATING\tPRICE")
	for _, b := range result.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.Genre, stars(b.Rating), b.Price)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("w.Flush: %w", err)
	}

	fmt.Fprintln(out, catalog.ResultsLabel(result.TotalCount))
	if bar := pagerLine(catalog.PageWindow(result.Page, result.TotalPages)); bar != "" {
		fmt.Fprintln(out, bar)
	}
	return nil
}

// stars renders a rating as filled stars plus a half star, with the number.
func stars(rating float64) string {
	full := int(rating)
	half := rating-float64(full) >= 0.5

	var sb strings.Builder
	sb.WriteString(strings.Repeat("★", full))
	if half {
		sb.WriteString("½")
	}
	sb.WriteString(" " + strconv.FormatFloat(rating, 'f', 1, 64))
	return sb.String()
}

func pagerLine(p catalog.Pager) string {
	if len(p.Links) == 0 {
		return ""
	}

	parts := make([]string, 0, len(p.Links)+2)
	if p.HasPrev {
		parts = append(parts, "<")
	}
	for _, link := range p.Links {
		switch {
		case link.Ellipsis:
			parts = append(parts, "...")
		case link.Current:
			parts = append(parts, "["+strconv.Itoa(link.Number)+"]")
		default:
			parts = append(parts, strconv.Itoa(link.Number))
		}
	}
	if p.HasNext {
		parts = append(parts, ">")
	}
	return strings.Join(parts, " ")
}

func printCart(out io.Writer, store *cart.Store, c domain.Cart) error {
	if c.IsEmpty() {
		_, err := fmt.Fprintln(out, "Your cart is empty")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tQTY\tPRICE\tTOTAL")
	for _, item := range c.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n", item.BookID, item.Title, item.Author, item.Quantity, item.Price, item.LineTotal())
	}
	fmt.Fprintln(w, "\t\t\t\t\t")

	s := store.Summary(c)
	fmt.Fprintf(w, "\t\t\t\tSubtotal\t%s\n", s.Subtotal)
	fmt.Fprintf(w, "\t\t\t\tShipping\t%s\n", s.Shipping)
	fmt.Fprintf(w, "\t\t\t\tTax\t%s\n", s.Tax)
	fmt.Fprintf(w, "\t\t\t\tTotal\t%s\n", s.Total)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("w.Flush: %w", err)
	}

	label, _ := cart.Badge(cart.ItemCount(c))
	_, err := fmt.Fprintf(out, "Cart (%s)\n", label)
	return err
}
