package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"menuboard/internal/ai"
	"menuboard/internal/assistant"
	"menuboard/internal/catalog"
)

// sampleSnapshot is a small built-in menu so the demo works without RTDB.
func sampleSnapshot() *catalog.Snapshot {
	price := func(v float64) *float64 { return &v }
	sections := []catalog.Section{
		{ID: "s1", Name: "Bebidas", Order: 1},
		{ID: "s2", Name: "Alimentos", Order: 2},
	}
	categories := []catalog.Category{
		{ID: "c1", Name: "Frappes", SectionID: "s1"},
		{ID: "c2", Name: "Bebidas Calientes", SectionID: "s1"},
		{ID: "c3", Name: "Malteadas", SectionID: "s1"},
		{ID: "c4", Name: "Repostería", SectionID: "s2"},
	}
	items := []catalog.Item{
		{ID: "p1", Name: "Frappe de Oreo", CategoryID: "c1", PriceSmall: price(55), PriceLarge: price(65)},
		{ID: "p2", Name: "Frappe de Mazapán", CategoryID: "c1", PriceSmall: price(55), PriceLarge: price(65)},
		{ID: "p3", Name: "Café Americano", CategoryID: "c2", Price: price(35)},
		{ID: "p4", Name: "Capuchino", CategoryID: "c2", Price: price(45)},
		{ID: "p5", Name: "Chocolate Caliente", CategoryID: "c2", Price: price(40)},
		{ID: "p6", Name: "Malteada de Fresa", CategoryID: "c3", Price: price(60)},
		{ID: "p7", Name: "Pastel de Chocolate", CategoryID: "c4", Price: price(50)},
		{ID: "p8", Name: "Galletas de Avena", CategoryID: "c4", Price: price(25)},
	}
	return catalog.NewSnapshot(sections, categories, items, "verano")
}

type fixedProvider struct {
	snap *catalog.Snapshot
}

func (f fixedProvider) Snapshot() *catalog.Snapshot { return f.snap }

func main() {
	ctx := context.Background()

	var gen assistant.Generator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, apiKey, "Mundo Frappe")
		if err != nil {
			log.Fatalf("Failed to initialize AI provider: %v", err)
		}
		defer provider.Close()
		gen = provider
		fmt.Println("(remote generation enabled)")
	} else {
		fmt.Println("(GEMINI_API_KEY not set, local mode)")
	}

	svc := assistant.NewService(assistant.ServiceDeps{
		Catalog:   fixedProvider{snap: sampleSnapshot()},
		Generator: gen,
		StoreName: "Mundo Frappe",
		Logger:    zap.NewNop(),
	})

	sess := svc.Open()
	for _, m := range sess.History() {
		fmt.Printf("Asistente: %s\n", m.Text)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "/quit" {
			break
		}

		msg, err := svc.Submit(ctx, sess.ID, text)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Printf("Asistente: %s\n", msg.Text)
		for _, rec := range msg.Recommendations {
			fmt.Printf("  - %s %s\n", rec.Name, rec.FormatPrice())
		}
	}
}
