package app

import (
	"fmt"

	"github.com/wastewise/wastewise/internal/notice"
)

// Exchange spends points on a product. On success the balance is deducted
// and a success notice carrying the remaining balance is shown. With
// insufficient balance nothing changes and an error notice states the
// shortfall. Product stock is intentionally not decremented (recorded
// product decision). Unknown IDs are a silent no-op.
func (s *Session) Exchange(productID string) {
	s.mu.Lock()

	var found bool
	var name string
	var cost int
	for _, p := range s.products {
		if p.ID == productID {
			found = true
			name = p.Name
			cost = p.Points
			break
		}
	}
	if !found {
		s.mu.Unlock()
		s.logger.Warn("exchange: unknown product", "id", productID)
		return
	}

	if s.balance < cost {
		shortfall := cost - s.balance
		balance := s.balance
		s.mu.Unlock()
		s.logger.Info("exchange rejected", "product", productID, "shortfall", shortfall)
		s.showRich(notice.Error(
			"Insufficient Points",
			fmt.Sprintf("You need %d more points to exchange this item", shortfall),
		).WithPoints(balance))
		return
	}

	s.balance -= cost
	remaining := s.balance
	s.mu.Unlock()

	s.logger.Info("exchange succeeded", "product", productID, "cost", cost, "remaining", remaining)
	s.showRich(notice.Success(
		"Exchange Successful!",
		fmt.Sprintf("You've exchanged %d points for %s", cost, name),
	).WithPoints(remaining))
}
