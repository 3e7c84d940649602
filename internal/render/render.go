package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"product-catalog/internal/catalog"
	"product-catalog/internal/model"
)

// FallbackImage is shown for products stored without an image.
const FallbackImage = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQsBGOs2225fFqTfnl5EKlrEUBn5-drby1x3Q&s"

const dateLayout = "2006-01-02"

// Render writes products to w in the given view. An empty collection prints
// "No products found".
func Render(w io.Writer, products []model.Product, view catalog.ViewMode) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found")
		return err
	}

	if view == catalog.ViewList {
		return renderList(w, products)
	}
	return renderGrid(w, products)
}

// Summary returns the "Showing N products" line.
func Summary(n int) string {
	switch n {
	case 0:
		return "No products found"
	case 1:
		return "Showing 1 product"
	}
	return fmt.Sprintf("Showing %d products", n)
}

func renderGrid(w io.Writer, products []model.Product) error {
	for i, p := range products {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		rule := strings.Repeat("-", 40)
		_, err := fmt.Fprintf(w, "%s\n%s  %s\n%s\n%s\nAdded %s\n%s\n",
			rule,
			p.Name, Price(p),
			p.Description,
			Image(p),
			Date(p.CreatedAt),
			rule,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func renderList(w io.Writer, products []model.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tADDED\tDESCRIPTION")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, Price(p), Date(p.CreatedAt), oneLine(p.Description))
	}
	return tw.Flush()
}

// Price formats the product price in rupees with two decimals.
func Price(p model.Product) string {
	return "₹" + p.Price.StringFixed(2)
}

// Image returns the product image URL or FallbackImage.
func Image(p model.Product) string {
	if p.ImageURL == nil || *p.ImageURL == "" {
		return FallbackImage
	}
	return *p.ImageURL
}

// Date formats t as a local calendar date.
func Date(t time.Time) string {
	return t.Local().Format(dateLayout)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
