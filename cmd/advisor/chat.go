package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/octobees/product-advisor/internal/config"
	"github.com/octobees/product-advisor/internal/dto"
	"github.com/octobees/product-advisor/internal/toolclient"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive search loop against the recommendation server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		command, err := serverCommand(cfg)
		if err != nil {
			return err
		}

		connectCtx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		session, err := toolclient.ConnectWithRetry(connectCtx, command, "advisor-chat", version, connectAttempts, connectDelay)
		if err != nil {
			return err
		}
		defer session.Close()

		tools, err := session.ListTools(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println("Connected. Available tools:")
		for _, tool := range tools {
			fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			product := promptLine(scanner, "\nEnter product to search (or 'quit' to exit): ")
			if product == "" || strings.EqualFold(product, "quit") {
				return nil
			}

			features := promptLine(scanner, "Enter specific features (press Enter to skip): ")
			minPrice := promptPrice(scanner, "Enter minimum price (press Enter for default 1): ", dto.DefaultMinPrice)
			maxPrice := promptPrice(scanner, "Enter maximum price (press Enter for default 9999999): ", dto.DefaultMaxPrice)

			fmt.Println("\nSearching for products...")
			recommendation, err := session.GetRecommendation(cmd.Context(), dto.SearchRequest{
				Product:          product,
				SpecificFeatures: features,
				MinPrice:         minPrice,
				MaxPrice:         maxPrice,
			})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}

			fmt.Println("\nRecommendation:")
			fmt.Println(strings.Repeat("=", 60))
			fmt.Println(recommendation)
			fmt.Println(strings.Repeat("=", 60))
		}
	},
}

func promptLine(scanner *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func promptPrice(scanner *bufio.Scanner, prompt string, fallback float64) float64 {
	raw := promptLine(scanner, prompt)
	if raw == "" {
		return fallback
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		fmt.Printf("Ignoring invalid price %q, using %.0f\n", raw, fallback)
		return fallback
	}
	return price
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
