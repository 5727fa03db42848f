package main

import (
	"compress/gzip"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"order-desk/internal/catalog"
	"order-desk/internal/model"

	"github.com/shopspring/decimal"
)

// Generates a sample catalogue file at data/catalog.json.gz for local
// development with CATALOG_SOURCE=file.
func main() {
	dataDir := "data"
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	now := time.Now()

	file := catalog.File{
		Products: []model.Product{
			{ID: "prod-laptop", Name: "Laptop", Price: decimal.NewFromInt(1200), Category: "Electronics", CreatedAt: now},
			{ID: "prod-smartphone", Name: "Smartphone", Price: decimal.NewFromInt(800), Category: "Electronics", CreatedAt: now},
			{ID: "prod-headphones", Name: "Headphones", Price: decimal.NewFromInt(150), Category: "Accessories", CreatedAt: now},
			{ID: "prod-monitor", Name: "Monitor", Price: decimal.NewFromInt(300), Category: "Electronics", CreatedAt: now},
			{ID: "prod-keyboard", Name: "Keyboard", Price: decimal.NewFromInt(80), Category: "Accessories", CreatedAt: now},
		},
		Promotions: []model.Promotion{
			{ID: "promo-none", Code: model.NoPromotionCode, Kind: model.PromotionNone, Description: "No discount", CreatedAt: now},
			{ID: "promo-save10", Code: "SAVE10", Kind: model.PromotionPercentage, Value: decimal.NewFromInt(10), Description: "10% off", CreatedAt: now},
			{ID: "promo-save20", Code: "SAVE20", Kind: model.PromotionPercentage, Value: decimal.NewFromInt(20), Description: "20% off", CreatedAt: now},
			{ID: "promo-flat50", Code: "FLAT50", Kind: model.PromotionFixed, Value: decimal.NewFromInt(50), Description: "$50 off", CreatedAt: now},
			{ID: "promo-flat100", Code: "FLAT100", Kind: model.PromotionFixed, Value: decimal.NewFromInt(100), Description: "$100 off", CreatedAt: now},
		},
	}

	// Refuse to write a catalogue the server would reject at startup.
	if _, err := catalog.New(file.Products, file.Promotions); err != nil {
		log.Fatalf("Generated catalogue is invalid: %v", err)
	}

	path := filepath.Join(dataDir, "catalog.json.gz")
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	enc := json.NewEncoder(gz)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		log.Fatalf("Failed to encode catalogue: %v", err)
	}

	log.Printf("Wrote %s (%d products, %d promotions)", path, len(file.Products), len(file.Promotions))
}
