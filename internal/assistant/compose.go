// README: Response composer; turns candidates and signals into the user-facing reply.
package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"menuboard/internal/catalog"
)

// shownCount is the most items listed in one reply body.
const shownCount = 3

const (
	noFoodReply = "Lo siento, actualmente no tenemos productos de comida disponibles. ¿Te gustaría que te recomiende alguna bebida? 😊"

	greetingReply = "¡Hola! 😊 ¿En qué puedo ayudarte hoy? Puedo recomendarte bebidas según tus preferencias."

	farewellReply = "¡Fue un placer ayudarte! Espero que disfrutes tu bebida. ¡Vuelve pronto! 👋"

	helpReply = "Puedo ayudarte a encontrar bebidas según tus preferencias. Por ejemplo, puedes preguntar por bebidas frías, calientes, dulces, refrescantes, o por categorías específicas como frappes, cafés, malteadas, etc."

	defaultReply = "No encontré resultados específicos para tu búsqueda. ¿Podrías ser más específico? Por ejemplo: 'bebidas frías', 'frappes', 'cafés', etc."
)

// greetingAnyRe is unanchored: a greeting folded into a recommendation
// request only prefixes the reply, it does not change the intent.
var greetingAnyRe = regexp.MustCompile(`hola|hi|hey|buenos días|buenas tardes|buenas noches`)

// Compose builds the reply for one turn. Total: every combination of signals
// and candidates maps to some reply, there is no error path.
func Compose(sig Signals, candidates []catalog.Item, snap *catalog.Snapshot) Reply {
	if sig.WantsFood && len(candidates) == 0 {
		return Reply{Text: noFoodReply}
	}

	if len(candidates) > 0 {
		return recommendationReply(sig, candidates, snap)
	}

	switch {
	case sig.IsGreeting:
		return Reply{Text: greetingReply}
	case sig.IsFarewell:
		return Reply{Text: farewellReply}
	case sig.IsHelp:
		return Reply{Text: helpReply}
	}

	return Reply{Text: defaultReply}
}

func recommendationReply(sig Signals, candidates []catalog.Item, snap *catalog.Snapshot) Reply {
	quantity := len(candidates)
	if quantity > shownCount {
		quantity = shownCount
	}
	if sig.WantsSingle {
		quantity = 1
	}
	shown := candidates[:quantity]

	var lines []string
	for _, it := range shown {
		lines = append(lines, itemLine(it, snap))
	}
	body := strings.Join(lines, "\n")

	greeting := ""
	if greetingAnyRe.MatchString(sig.Query) {
		greeting = "¡Hola! "
	}

	var text string
	if quantity == 1 {
		text = fmt.Sprintf("%sTe recomiendo esta bebida:\n\n%s\n\n¡Espero que la disfrutes! 😊", greeting, body)
	} else {
		text = fmt.Sprintf("%sTe recomiendo estas opciones:\n\n%s\n\n¿Te gustaría saber más sobre alguna de estas opciones?", greeting, body)
	}

	return Reply{Text: text, Recommendations: shown}
}

// itemLine renders "• name (category) - $price", dropping the category for
// dangling references and the price segment when the item has no price.
func itemLine(it catalog.Item, snap *catalog.Snapshot) string {
	line := "• " + it.Name
	if c, ok := snap.CategoryByID(it.CategoryID); ok {
		line += fmt.Sprintf(" (%s)", c.Name)
	}
	if price := it.FormatPrice(); price != "" {
		line += " - " + price
	}
	return line
}
