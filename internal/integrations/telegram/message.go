package telegram

import (
	"fmt"
	"strings"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

const reservationTemplate = `🐟 *NUOVA PRENOTAZIONE* 🐟

🍲 *PRODOTTO:* %s

👤 *Cliente:* %s
📞 *Tel:* %s
⚖️ *Quantità:* %dg
📅 *Data Ritiro:* %s
⏰ *Fascia Oraria:* %s

📝 *Note:*
%s

🔖 Rif. %s`

// markdownEscaper экранирует символы разметки Markdown (legacy) во введённых пользователем полях
var markdownEscaper = strings.NewReplacer(
	"_", `\_`,
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
)

// FormatReservationMessage строит текст уведомления для персонала
func FormatReservationMessage(r *domain.Reservation) string {
	d := r.Draft

	return fmt.Sprintf(reservationTemplate,
		escape(d.ProductName),
		escape(d.CustomerName()),
		escape(d.PhoneLabel()),
		d.Grams,
		d.PickupDate.String(),
		escape(d.PickupTimeSlot.Label()),
		escape(d.NotesLabel()),
		r.Reference.String(),
	)
}

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
