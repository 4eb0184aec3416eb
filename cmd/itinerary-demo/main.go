package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"tripteller/internal/ai"
	"tripteller/internal/itinerary"
)

func main() {
	days := flag.Int("days", 3, "trip length in days")
	pace := flag.String("pace", "moderate", "relaxed, moderate or intensive")
	flag.Parse()

	destination := strings.Join(flag.Args(), " ")
	if destination == "" {
		log.Fatal("usage: itinerary-demo [-days N] [-pace P] <destination>")
	}

	zl, _ := zap.NewDevelopment()
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()
	provider, identity := ai.Select(ctx, ai.Credentials{
		GeminiKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
	}, zl)

	planner := itinerary.NewService(provider, identity, 0, zl)
	it, err := planner.Generate(ctx, itinerary.Request{
		Destination: destination,
		Days:        *days,
		Pace:        itinerary.Pace(*pace),
	})
	if err != nil {
		log.Fatalf("generate itinerary: %v", err)
	}

	fmt.Printf("Provider: %s\n", identity)
	out, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		log.Fatalf("marshal itinerary: %v", err)
	}
	fmt.Println(string(out))
}
