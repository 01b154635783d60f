// Package catalog provides the static session datasets.
// Every load function is deterministic and side-effect free; all mutation
// flows through the app session, which owns the authoritative copies.
package catalog

import (
	"github.com/wastewise/wastewise/internal/domain"
)

// Products returns the marketplace catalog.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Eco-Friendly Water Bottle",
			Description:   "Stainless steel water bottle made from recycled materials for sustainable hydration",
			Points:        500,
			OriginalPrice: 10,
			ProductCat:    "Home & Garden",
			Rating:        4.8,
			Popular:       true,
		},
		{
			ID:            "2",
			Name:          "Organic Cotton T-Shirt",
			Description:   "100% organic cotton, sustainably produced with eco-friendly materials",
			Points:        350,
			OriginalPrice: 7,
			ProductCat:    "Fashion",
			Rating:        4.6,
		},
		{
			ID:            "3",
			Name:          "Reusable Shopping Bag",
			Description:   "Durable canvas shopping bag made from organic cotton for sustainable shopping",
			Points:        400,
			OriginalPrice: 8,
			ProductCat:    "Home & Garden",
			Rating:        4.7,
			Popular:       true,
		},
		{
			ID:            "4",
			Name:          "Reusable Coffee Cup",
			Description:   "Eco-friendly travel mug made from bamboo fiber with leak-proof design",
			Points:        350,
			OriginalPrice: 7,
			ProductCat:    "Home & Garden",
			Rating:        4.5,
		},
		{
			ID:            "5",
			Name:          "Recycled Notebook",
			Description:   "Made from 100% recycled paper with sustainable binding",
			Points:        200,
			OriginalPrice: 4,
			ProductCat:    "Books",
			Rating:        4.3,
		},
		{
			ID:            "6",
			Name:          "Green Store Voucher",
			Description:   "Digital voucher for eco-friendly shopping at partner stores",
			Points:        1000,
			OriginalPrice: 20,
			ProductCat:    "Vouchers",
			Rating:        4.7,
			Popular:       true,
		},
		{
			ID:            "7",
			Name:          "Wireless Phone Charger",
			Description:   "Energy-efficient wireless charging pad made from recycled materials",
			Points:        800,
			OriginalPrice: 16,
			ProductCat:    "Electronics",
			Rating:        4.4,
		},
	}
}

// Bins returns the building's smart bin fleet, including sensor telemetry.
func Bins() []domain.SmartBin {
	return []domain.SmartBin{
		{
			ID:           "SB-001",
			Name:         "Foodcourt Area A",
			Floor:        "Level 3",
			Location:     "Near Main Escalator",
			Types:        []string{"Organic", "Recyclable"},
			State:        domain.BinActive,
			Capacity:     75,
			LastEmptied:  "2024-12-04 18:00",
			NextPickup:   "Today 08:00",
			Sensor:       domain.SensorWarning,
			SensorOnline: true,
			Temperature:  28,
			Composition:  domain.Composition{Organic: 65, Recyclable: 30, Residual: 5},
		},
		{
			ID:           "SB-002",
			Name:         "Lobby Main Entrance",
			Floor:        "Level 1",
			Location:     "Beside Information Desk",
			Types:        []string{"Recyclable", "Residual"},
			State:        domain.BinActive,
			Capacity:     45,
			LastEmptied:  "2024-12-04 20:00",
			NextPickup:   "Tomorrow 08:00",
			Sensor:       domain.SensorNormal,
			SensorOnline: true,
			Temperature:  25,
			Composition:  domain.Composition{Organic: 20, Recyclable: 60, Residual: 20},
		},
		{
			ID:           "SB-003",
			Name:         "Office Pantry B",
			Floor:        "Level 5",
			Location:     "Pantry Area",
			Types:        []string{"Organic"},
			State:        domain.BinFull,
			Capacity:     95,
			LastEmptied:  "2024-12-04 08:00",
			NextPickup:   "Urgent - Requested",
			Sensor:       domain.SensorCritical,
			SensorOnline: true,
			Temperature:  30,
			Composition:  domain.Composition{Organic: 80, Recyclable: 15, Residual: 5},
		},
		{
			ID:           "SB-004",
			Name:         "Basement Parking",
			Floor:        "Basement 1",
			Location:     "Near Exit Gate A",
			Types:        []string{"Residual"},
			State:        domain.BinMaintenance,
			Capacity:     30,
			LastEmptied:  "2024-12-03 18:00",
			NextPickup:   "Pending Maintenance",
			Sensor:       domain.SensorNormal,
			SensorOnline: false,
			Temperature:  24,
			Composition:  domain.Composition{Organic: 10, Recyclable: 40, Residual: 50},
		},
		{
			ID:           "SB-005",
			Name:         "Cinema Wing",
			Floor:        "Level 4",
			Location:     "Near Snack Counter",
			Types:        []string{"Organic", "Recyclable", "Residual"},
			State:        domain.BinActive,
			Capacity:     60,
			LastEmptied:  "2024-12-04 22:00",
			NextPickup:   "Today 14:00",
			Sensor:       domain.SensorNormal,
			SensorOnline: true,
			Temperature:  26,
			Composition:  domain.Composition{Organic: 40, Recyclable: 40, Residual: 20},
		},
	}
}

// Notifications returns the initial inbox contents.
func Notifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:      "1",
			Type:    domain.TypeAchievement,
			Title:   "New Achievement Unlocked!",
			Message: `You've earned the "Eco Pioneer" badge for recycling 100+ items`,
			Time:    "2 minutes ago",
		},
		{
			ID:      "2",
			Type:    domain.TypePoints,
			Title:   "Points Earned",
			Message: "You earned 25 points for proper waste sorting today",
			Time:    "1 hour ago",
		},
		{
			ID:      "3",
			Type:    domain.TypeReminder,
			Title:   "Scan Reminder",
			Message: "Don't forget to scan your waste today to earn points!",
			Time:    "3 hours ago",
			Read:    true,
		},
		{
			ID:      "4",
			Type:    domain.TypeCommunity,
			Title:   "New Challenge Available",
			Message: `Join the "Zero Waste Week" challenge and compete with friends`,
			Time:    "1 day ago",
			Read:    true,
		},
		{
			ID:      "5",
			Type:    domain.TypeReward,
			Title:   "Reward Available",
			Message: "You have enough points to exchange for an eco-friendly water bottle",
			Time:    "2 days ago",
			Read:    true,
		},
		{
			ID:      "6",
			Type:    domain.TypeSystem,
			Title:   "App Update",
			Message: "WasteWise has been updated with new features and improvements",
			Time:    "3 days ago",
			Read:    true,
		},
	}
}

// News returns the community industry news feed.
func News() []domain.NewsPost {
	return []domain.NewsPost{
		{
			ID:         "1",
			Author:     "WasteWise Team",
			AuthorType: "Official",
			Title:      "New ESG Regulation 2024: What Buildings Need to Know",
			Content:    "The Ministry of Environment has released new guidelines for commercial waste management compliance. Key changes include mandatory reporting requirements...",
			Topic:      "Regulation",
			Date:       "2 hours ago",
			Likes:      42,
		},
		{
			ID:         "2",
			Author:     "Pacific Place Mall",
			AuthorType: "Mall",
			Title:      "How We Achieved 95% Waste Diversion Rate",
			Content:    "Sharing our journey to becoming the most sustainable mall in the region. The key factors were staff training, smart bin deployment, and...",
			Topic:      "Success Story",
			Date:       "1 day ago",
			Likes:      128,
		},
		{
			ID:         "3",
			Author:     "WasteWise Team",
			AuthorType: "Official",
			Title:      "Smart Bin Firmware Update v2.5 Released",
			Content:    "New features: Improved AI waste detection accuracy up to 95%, better capacity prediction algorithms, and energy optimization...",
			Topic:      "Product Update",
			Date:       "2 days ago",
			Likes:      56,
		},
		{
			ID:         "4",
			Author:     "Hyatt Regency",
			AuthorType: "Hotel",
			Title:      "Composting Program: 6 Months Review",
			Content:    "Our organic waste composting initiative has generated 2 tons of compost and reduced waste disposal costs by 35%...",
			Topic:      "Success Story",
			Date:       "3 days ago",
			Likes:      87,
		},
	}
}

// Challenges returns the industry challenge list.
func Challenges() []domain.Challenge {
	return []domain.Challenge{
		{
			ID:           "1",
			Title:        "Q4 Zero Landfill Challenge",
			Description:  "Achieve 95%+ waste diversion rate for Q4 2024",
			Participants: 45,
			Deadline:     "Dec 31, 2024",
			Reward:       "ESG Excellence Award",
			Progress:     72,
		},
		{
			ID:           "2",
			Title:        "Organic Waste Reduction",
			Description:  "Reduce organic waste by 30% compared to last quarter",
			Participants: 32,
			Deadline:     "Dec 15, 2024",
			Reward:       "Green Champion Badge",
			Progress:     58,
		},
		{
			ID:           "3",
			Title:        "Staff Certification Drive",
			Description:  "100% staff certified in basic waste sorting by Q1 2025",
			Participants: 28,
			Deadline:     "Jan 31, 2025",
			Reward:       "Training Excellence Award",
			Progress:     85,
		},
	}
}

// Leaderboard returns the industry leaderboard rows in rank order.
func Leaderboard() []domain.LeaderboardEntry {
	return []domain.LeaderboardEntry{
		{Rank: 1, Name: "Pacific Place Mall", BuildingType: "Mall", Location: "Downtown", WasteDiverted: "95%", ESGScore: 98, Badge: "Platinum"},
		{Rank: 2, Name: "Hyatt Regency Hotel", BuildingType: "Hotel", Location: "Central Business District", WasteDiverted: "92%", ESGScore: 94, Badge: "Platinum"},
		{Rank: 3, Name: "Central Mall", BuildingType: "Mall", Location: "City Center", WasteDiverted: "88%", ESGScore: 85, Badge: "Gold"},
		{Rank: 4, Name: "St. Mary Hospital", BuildingType: "Hospital", Location: "Medical District", WasteDiverted: "84%", ESGScore: 81, Badge: "Gold"},
		{Rank: 5, Name: "One Tower Offices", BuildingType: "Office", Location: "Financial District", WasteDiverted: "79%", ESGScore: 76, Badge: "Silver"},
	}
}

// Sessions returns the upcoming bookable training sessions.
func Sessions() []domain.TrainingSession {
	return []domain.TrainingSession{
		{
			ID:            "1",
			Title:         "Smart Bin Operations Workshop",
			Description:   "Hands-on training for operating and maintaining WasteWise smart bins",
			Date:          "Dec 15, 2024",
			Time:          "09:00 - 12:00",
			Location:      "Training Room A, Grand Indonesia",
			Format:        "In-Person",
			Instructor:    "WasteWise Technical Team",
			Certification: "Smart Bin Operator Certificate",
			TargetRole:    "Cleaning Staff",
			SpotsLeft:     8,
			TotalSpots:    15,
		},
		{
			ID:            "2",
			Title:         "Waste Sorting Best Practices",
			Description:   "Standard operating procedures for waste segregation at source",
			Date:          "Dec 18, 2024",
			Time:          "14:00 - 16:00",
			Location:      "Virtual (Zoom)",
			Format:        "Virtual",
			Instructor:    "Environmental Compliance Officer",
			Certification: "Waste Sorting Certification",
			TargetRole:    "All Staff",
			SpotsLeft:     25,
			TotalSpots:    50,
		},
		{
			ID:            "3",
			Title:         "ESG Compliance for Managers",
			Description:   "Understanding ESG metrics, reporting standards, and compliance requirements",
			Date:          "Dec 20, 2024",
			Time:          "10:00 - 13:00",
			Location:      "Conference Room B",
			Format:        "In-Person",
			Instructor:    "ESG Consultant",
			Certification: "ESG Manager Certification",
			TargetRole:    "Managers",
			SpotsLeft:     3,
			TotalSpots:    10,
		},
		{
			ID:            "4",
			Title:         "Hazardous Waste Safety Training",
			Description:   "Safety protocols and emergency procedures for hazardous material handling",
			Date:          "Dec 22, 2024",
			Time:          "09:00 - 11:00",
			Location:      "Training Room A",
			Format:        "In-Person",
			Instructor:    "Safety & Compliance Team",
			Certification: "Hazardous Waste Handler License",
			TargetRole:    "Supervisors",
			SpotsLeft:     5,
			TotalSpots:    12,
		},
	}
}

// Certifications returns the staff certification coverage stats.
func Certifications() []domain.CertificationStat {
	return []domain.CertificationStat{
		{ID: "1", Name: "Smart Bin Operator", TotalStaff: 24, Certified: 18, ExpiringSoon: 3},
		{ID: "2", Name: "Waste Sorting", TotalStaff: 45, Certified: 32, ExpiringSoon: 5},
		{ID: "3", Name: "Hazardous Waste Handler", TotalStaff: 12, Certified: 8, ExpiringSoon: 2},
		{ID: "4", Name: "ESG Compliance Manager", TotalStaff: 5, Certified: 2, ExpiringSoon: 0},
	}
}

// SortingQuiz returns the waste sorting lesson quiz.
func SortingQuiz() domain.Quiz {
	return domain.Quiz{
		LessonID: "waste-sorting-basics",
		Title:    "Waste Sorting Basics",
		Points:   50,
		Questions: []domain.QuizQuestion{
			{
				Prompt: "Which bin should food scraps go into?",
				Options: []string{
					"Organic",
					"Recyclable",
					"Residual",
					"Hazardous",
				},
				CorrectIndex: 0,
			},
			{
				Prompt: "A greasy pizza box belongs in which bin?",
				Options: []string{
					"Recyclable",
					"Organic",
					"Residual",
				},
				CorrectIndex: 2,
			},
			{
				Prompt: "Used batteries must be disposed of as:",
				Options: []string{
					"Residual waste",
					"Hazardous waste",
					"Recyclable waste",
				},
				CorrectIndex: 1,
			},
		},
	}
}

// CurrentUser returns the signed-in facility team member.
func CurrentUser() domain.User {
	return domain.User{
		Name:           "John Smith",
		Role:           "Facility Manager",
		AvatarInitials: "JS",
	}
}

// BuildingProfile returns the organization dashboard data.
func BuildingProfile() domain.Organization {
	return domain.Organization{
		BuildingName:  "Central Mall",
		BuildingType:  "Mall",
		ContractPlan:  "Enterprise",
		WasteMonthKg:  2400,
		ESGScore:      85,
		ESGLevel:      "Gold",
		NextPickup:    "Today, 08:00 AM",
		SmartBinCount: 24,
		DiversionRate: 92,
		CostSavings:   "Rp 15.5M",
	}
}

// WasteByType returns the monthly waste breakdown rows.
func WasteByType() []domain.WasteRecord {
	return []domain.WasteRecord{
		{Type: "Organic", Amount: "0.9", Unit: "ton"},
		{Type: "Recyclable", Amount: "1.2", Unit: "ton"},
		{Type: "Hazardous", Amount: "0.1", Unit: "ton"},
		{Type: "Residual", Amount: "0.2", Unit: "ton"},
	}
}
