package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/user/moodlog/internal/config"
	"github.com/user/moodlog/pkg/ollama"
)

// Quick manual check against a local model server.
func main() {
	ctx := context.Background()

	cfg := config.OllamaConfig{
		BaseURL: "http://localhost:11434",
		Timeout: 60 * time.Second,
	}
	client, err := ollama.NewDefaultClient(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	models, err := client.ListModels(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range models {
		fmt.Println("model:", m.Name)
	}

	reply, err := client.Chat(ctx, ollama.ChatPrompt{
		Model:       "llama3",
		System:      "You are a friendly assistant.",
		Prompt:      "Say hello in one short sentence.",
		MaxTokens:   50,
		Temperature: 0.8,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(reply)
}
