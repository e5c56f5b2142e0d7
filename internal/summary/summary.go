package summary

import (
	"fmt"
	"net/url"
	"strings"
)

// Line is one rendered order line.
type Line struct {
	Qty       int
	Name      string
	Size      string
	Sauce     string
	Extras    []string
	LineTotal float64
}

// Order is the finalized order to render.
type Order struct {
	Lines         []Line
	Subtotal      float64
	DeliveryFee   float64
	Total         float64
	Method        string // "delivery" or "pickup"
	DistanceLabel string
	Address       string
	Payment       string
}

// Render formats the itemized plain-text order summary.
func Render(o Order) string {
	var b strings.Builder

	b.WriteString("🧾 Commande Snip Taste\n")
	b.WriteString("----------------------\n")

	for _, l := range o.Lines {
		b.WriteString(fmt.Sprintf("%dx %s", l.Qty, l.Name))

		var notes []string
		if l.Size != "" {
			notes = append(notes, l.Size)
		}
		if l.Sauce != "" {
			notes = append(notes, "sauce "+l.Sauce)
		}
		for _, e := range l.Extras {
			notes = append(notes, "+ "+e)
		}
		if len(notes) > 0 {
			b.WriteString(" (" + strings.Join(notes, ", ") + ")")
		}

		b.WriteString(fmt.Sprintf(" = %.2f dh\n", l.LineTotal))
	}

	b.WriteString("----------------------\n")
	b.WriteString(fmt.Sprintf("Sous-total: %.2f dh\n", o.Subtotal))

	if o.Method == "delivery" {
		b.WriteString(fmt.Sprintf("Livraison (%s): %.2f dh\n", o.DistanceLabel, o.DeliveryFee))
	}

	b.WriteString(fmt.Sprintf("Total: %.2f dh\n", o.Total))

	if o.Method == "delivery" {
		b.WriteString("📍 Livraison: " + o.Address + "\n")
	} else {
		b.WriteString("🏃 Récupération sur place\n")
	}

	b.WriteString("💳 Paiement: " + o.Payment + "\n")

	return b.String()
}

// DeepLink builds the phone-order link with the summary text
// percent-encoded. Spaces must encode as %20, not '+', to stay
// byte-compatible with existing consumers.
func DeepLink(phone, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + encoded
}
