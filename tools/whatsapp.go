package tools

import (
	"fmt"
	"net/url"
	"strings"

	"mdyrent/models"
)

const dateToArrange = "data a combinar"

// QuoteMessage monta a mensagem pré-preenchida enviada ao cliente da cotação.
func QuoteMessage(q models.QuoteRequest) string {
	first := strings.TrimSpace(q.Name)
	if fields := strings.Fields(first); len(fields) > 0 {
		first = fields[0]
	}

	pickupDate := strings.TrimSpace(q.PickupDate)
	if pickupDate == "" {
		pickupDate = dateToArrange
	}
	dropDate := strings.TrimSpace(q.DropDate)
	if dropDate == "" {
		dropDate = dateToArrange
	}

	return fmt.Sprintf(
		"Olá %s! Recebemos seu pedido de cotação (%s): retirada em %s (%s) e devolução em %s (%s). Podemos falar?",
		first, q.Category, q.PickupPlace, pickupDate, q.DropPlace, dropDate,
	)
}

// QuoteDeepLink monta o link wa.me para o operador abrir conversa com o
// cliente da cotação, com a mensagem já preenchida.
func QuoteDeepLink(q models.QuoteRequest) (string, error) {
	phone, err := NormalizeWhatsAppTo(q.Phone)
	if err != nil {
		return "", err
	}
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(QuoteMessage(q)), nil
}
