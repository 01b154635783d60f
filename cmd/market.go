package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/domain"
)

var (
	marketCategory string
	marketSearch   string
	marketExchange string
)

// marketCmd represents the market command
var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Browse the rewards marketplace",
	Long: `Browse the rewards marketplace and exchange points for products.

USAGE:
    wastewise market [OPTIONS]

OPTIONS:
    --category <name>    Filter by category: Electronics, Fashion, Home & Garden, Books, Vouchers
    --search <query>     Case-insensitive substring search over name and description
    --exchange <id>      Exchange points for the product with the given ID
    -h, --help           Show this help

EXAMPLES:
    wastewise market                         # Full catalog
    wastewise market --category "Fashion"    # One category
    wastewise market --search bottle         # Search
    wastewise market --exchange 1            # Spend points`,
	RunE: runMarket,
}

func runMarket(cmd *cobra.Command, args []string) error {
	session, logger, err := newSession("market")
	if err != nil {
		return fmt.Errorf("market: %w", err)
	}
	defer func() {
		_ = session.Close()
		_ = logger.Shutdown()
	}()

	if marketExchange != "" {
		session.Exchange(marketExchange)
		printNotice(session)
		return nil
	}

	state := domain.FilterState{Category: marketCategory, Query: marketSearch}
	products := session.Products(state)
	if len(products) == 0 {
		if marketSearch != "" {
			fmt.Printf("No products match %q. Try a different search term.\n", marketSearch)
		} else {
			fmt.Println("No products available in this category.")
		}
		return nil
	}

	fmt.Printf("Balance: %d points\n\n", session.Balance())
	for _, p := range products {
		popular := ""
		if p.Popular {
			popular = "  [Popular]"
		}
		fmt.Printf("%-3s %-28s %5d pts  %.1f★  %s%s\n", p.ID, p.Name, p.Points, p.Rating, p.ProductCat, popular)
	}
	return nil
}

func init() {
	marketCmd.Flags().StringVar(&marketCategory, "category", "", "filter by category")
	marketCmd.Flags().StringVar(&marketSearch, "search", "", "search products")
	marketCmd.Flags().StringVar(&marketExchange, "exchange", "", "exchange points for a product ID")
	rootCmd.AddCommand(marketCmd)
}
