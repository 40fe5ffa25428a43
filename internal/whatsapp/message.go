// Package whatsapp formats order confirmations for the outbound
// WhatsApp channel. It only builds payloads and links; opening the
// conversation is the caller's side effect.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/guetofya/storefront/internal/models"
)

func statusLabel(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusAccepted:
		return "Aprovado"
	case models.OrderStatusRejected:
		return "Recusado"
	default:
		return "Aguardando Aprovação"
	}
}

// Message renders the order as the plain-text message sent to the shop's
// WhatsApp number.
func Message(order models.Order) string {
	var b strings.Builder

	b.WriteString("*NOVO PEDIDO - GUETO FYA*\n\n")
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "📱 *Tel:* %s\n", order.Customer.Phone)
	fmt.Fprintf(&b, "📧 *Email:* %s\n\n", order.Customer.Email)

	b.WriteString("*🛒 PRODUTOS:*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "▪️ %dx %s (%s) - R$ %s\n",
			item.Quantity, item.Name, item.SelectedSize, item.Price.StringFixed(2))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "💲 *Subtotal:* R$ %s\n", order.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "📉 *Desconto:* R$ %s\n", order.Discount.StringFixed(2))
	fmt.Fprintf(&b, "💰 *TOTAL:* R$ %s\n\n", order.Total.StringFixed(2))

	fmt.Fprintf(&b, "🆔 *ID Pedido:* %s\n", order.ID)
	fmt.Fprintf(&b, "⏳ *Status:* %s", statusLabel(order.Status))

	return b.String()
}

// Link builds the api.whatsapp.com send URL carrying the order message
// to the given number (international format, digits only).
func Link(number string, order models.Order) string {
	return fmt.Sprintf("https://api.whatsapp.com/send/?phone=%s&text=%s",
		url.QueryEscape(number), url.QueryEscape(Message(order)))
}
