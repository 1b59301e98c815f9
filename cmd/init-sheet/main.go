package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"consultancy_site_go/config"
	"consultancy_site_go/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	fmt.Println("=== Initialize Lead Sheet ===")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sheet, err := services.NewLeadSheet(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open lead sheet: %v", err)
	}
	if sheet == nil {
		log.Fatal("No lead sheet configured. Set GOOGLE_SHEET_ID, GOOGLE_SHEETS_CLIENT_EMAIL and GOOGLE_SHEETS_PRIVATE_KEY, or LEADS_XLSX_PATH")
	}

	if err := sheet.EnsureHeaderRow(ctx); err != nil {
		log.Fatalf("Failed to initialize headers: %v", err)
	}

	fmt.Printf("✅ %s sheet ready (%d columns)\n", services.LeadSheetName, len(services.LeadSheetHeader))
}
