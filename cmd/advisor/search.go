package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/octobees/product-advisor/internal/config"
	"github.com/octobees/product-advisor/internal/dto"
	"github.com/octobees/product-advisor/internal/toolclient"
)

var (
	searchFeatures string
	searchMinPrice float64
	searchMaxPrice float64
)

var searchCmd = &cobra.Command{
	Use:   "search <product>",
	Short: "One-shot product search and recommendation",
	Example: `  advisor search laptop --features "8GB RAM, SSD" --min-price 30000 --max-price 80000
  advisor search smartphone --features "good camera, 5G" --min-price 15000
  advisor search "wireless headphones" --max-price 5000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		command, err := serverCommand(cfg)
		if err != nil {
			return err
		}

		connectCtx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		session, err := toolclient.Connect(connectCtx, command, "advisor-cli", version)
		if err != nil {
			return err
		}
		defer session.Close()

		req := dto.SearchRequest{
			Product:          args[0],
			SpecificFeatures: searchFeatures,
			MinPrice:         searchMinPrice,
			MaxPrice:         searchMaxPrice,
		}

		fmt.Printf("Searching for: %s\n", req.Product)
		if req.SpecificFeatures != "" {
			fmt.Printf("Features: %s\n", req.SpecificFeatures)
		}
		fmt.Printf("Price range: %.0f - %.0f\n", req.MinPrice, req.MaxPrice)

		recommendation, err := session.GetRecommendation(cmd.Context(), req)
		if err != nil {
			return err
		}

		rule := strings.Repeat("=", 60)
		fmt.Println("Recommendation:")
		fmt.Println(rule)
		fmt.Println(recommendation)
		fmt.Println(rule)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchFeatures, "features", "f", "", "specific features to look for")
	searchCmd.Flags().Float64Var(&searchMinPrice, "min-price", dto.DefaultMinPrice, "minimum price")
	searchCmd.Flags().Float64Var(&searchMaxPrice, "max-price", dto.DefaultMaxPrice, "maximum price")
	rootCmd.AddCommand(searchCmd)
}
