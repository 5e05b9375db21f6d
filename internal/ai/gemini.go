// README: Remote generation adapter backed by Gemini; failures are typed, never surfaced to users.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"menuboard/internal/catalog"
)

const geminiModel = "gemini-2.0-flash"

// maxMenuItems bounds the menu digest embedded in the prompt.
const maxMenuItems = 30

var (
	// ErrRemoteUnavailable covers transport errors, timeouts and non-2xx
	// responses from the generation endpoint.
	ErrRemoteUnavailable = errors.New("remote generation unavailable")
	// ErrMalformedResponse covers responses with no candidates or empty text.
	ErrMalformedResponse = errors.New("malformed remote response")
)

// GeminiProvider implements remote reply generation using Google's Gemini
// models.
type GeminiProvider struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	storeName string
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, storeName string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(500)
	model.SetTopP(0.8)
	model.SetTopK(40)

	return &GeminiProvider{
		client:    client,
		model:     model,
		storeName: storeName,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Generate produces a free-text reply for the query, grounded in a bounded
// digest of the catalog snapshot. Any failure is reported as one of the
// typed errors above; the caller treats them all as "no result" and answers
// locally.
func (p *GeminiProvider) Generate(ctx context.Context, query string, snap *catalog.Snapshot) (string, error) {
	prompt := buildMenuPrompt(p.storeName, query, snap)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		parts = append(parts, string(txt))
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: empty text parts", ErrMalformedResponse)
	}

	return strings.Join(parts, "\n"), nil
}

// buildMenuPrompt combines the fixed system instruction, a bounded menu
// digest and the user message into a single prompt, following the combined
// approach rather than a separate system instruction: the menu digest is
// per-request context.
func buildMenuPrompt(storeName, query string, snap *catalog.Snapshot) string {
	var categories []string
	for _, c := range snap.Categories {
		categories = append(categories, c.Name)
	}

	var items []string
	for _, it := range snap.AvailableItems() {
		if len(items) == maxMenuItems {
			break
		}
		categoryName := "Sin categoría"
		if c, ok := snap.CategoryByID(it.CategoryID); ok {
			categoryName = c.Name
		}
		price := it.FormatPrice()
		if price == "" {
			price = "Precio no disponible"
		}
		items = append(items, fmt.Sprintf("%s (%s) - %s", it.Name, categoryName, price))
	}

	system := fmt.Sprintf(`Eres un asistente virtual conversacional y amigable. Trabajas para "%s", una cafetería, pero puedes hablar sobre CUALQUIER tema.

INFORMACIÓN DEL MENÚ (SOLO usa esta información cuando el usuario pregunte específicamente sobre productos, menú, bebidas o comida):
Categorías: %s
Productos: %s

INSTRUCCIONES IMPORTANTES:
1. Responde en español de manera natural y conversacional
2. NO fuerces la conversación hacia el menú si el usuario no pregunta sobre ello
3. SOLO menciona productos del menú cuando el usuario pregunte específicamente sobre productos, recomendaciones o precios
4. Para cualquier otra pregunta o comentario, responde de manera natural sin mencionar el menú
5. Mantén las respuestas concisas pero informativas (máximo 200 palabras)
6. Usa emojis de forma moderada cuando sea apropiado
7. Sé honesto, directo y conversacional`,
		storeName,
		strings.Join(categories, ", "),
		strings.Join(items, ", "))

	return fmt.Sprintf("%s\n\nUsuario: %s\n\nAsistente:", system, query)
}
