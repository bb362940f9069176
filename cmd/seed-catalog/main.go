package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/backend"
	"github.com/jafarshop/shopfront/internal/config"
)

type seedProduct struct {
	title       string
	description string
	imageURL    string
	price       float64
}

var demoCatalog = []seedProduct{
	{"Red Shirt", "A red t-shirt, perfect for days with non-red weather.", "https://cdn.pixabay.com/photo/2016/10/02/22/17/red-t-shirt-1710578_1280.jpg", 29.99},
	{"Blue Carpet", "Fits your red shirt perfectly. To stand on. Not to wear it.", "https://cdn.pixabay.com/photo/2014/08/25/20/30/carpet-427823_1280.jpg", 99.99},
	{"Coffee Mug", "Can also be used for tea.", "https://cdn.pixabay.com/photo/2017/09/08/19/58/mug-2730462_1280.jpg", 8.99},
	{"Notebook", "Paper, bound. For writing things down.", "https://cdn.pixabay.com/photo/2015/10/03/02/14/notebook-968603_1280.jpg", 5.49},
}

func main() {
	if len(os.Args) > 1 {
		fmt.Println("Usage: go run cmd/seed-catalog/main.go")
		fmt.Println("Seeds the configured backend with a small demo catalog.")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Backend.APIKey == "" {
		fmt.Fprintln(os.Stderr, "BACKEND_API_KEY is required")
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := backend.NewClient(cfg.Backend, logger)

	ctx := context.Background()
	for _, p := range demoCatalog {
		created, err := client.CreateProduct(ctx, p.title, p.description, p.imageURL, p.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create %q: %v\n", p.title, err)
			os.Exit(1)
		}
		fmt.Printf("Created %s (%s)\n", created.Title, created.ID)
	}

	fmt.Printf("\nSeeded %d products into %s\n", len(demoCatalog), cfg.Backend.BaseURL)
}
