package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ejparker/curdboard-backend/config"
	"github.com/ejparker/curdboard-backend/internal/app/model"
	"github.com/ejparker/curdboard-backend/internal/app/repository"
	"github.com/xuri/excelize/v2"
)

// Imports a business directory spreadsheet into businesses.json.
// Expected columns: id, name, category. The first row is a header.
// Favorite and rating fields start zeroed; reviews fill them in later.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	businesses, err := readBusinessesFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total businesses to import: %d\n", len(businesses))

	fmt.Print("This replaces businesses.json. Proceed? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	businessRepo := repository.NewBusinessRepository(cfg.Data.BusinessesFile())
	if err := businessRepo.Save(businesses); err != nil {
		log.Fatal("Failed to write businesses.json:", err)
	}

	fmt.Printf("Imported %d businesses into %s\n", len(businesses), cfg.Data.BusinessesFile())
}

func readBusinessesFromXLSX(path string) ([]model.Business, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var businesses []model.Business
	nextID := 1
	for i, row := range rows[1:] {
		name := cell(row, 1)
		if name == "" {
			continue
		}

		id := nextID
		if rawID := cell(row, 0); rawID != "" {
			parsed, err := strconv.Atoi(rawID)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid id %q", i+2, rawID)
			}
			id = parsed
		}
		if id >= nextID {
			nextID = id + 1
		}

		businesses = append(businesses, model.Business{
			ID:       id,
			Name:     name,
			Category: cell(row, 2),
		})
	}

	return businesses, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
