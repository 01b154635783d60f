package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/domain"
)

var (
	communityTab      string
	communityCategory string
	communityLike     string
)

// communityCmd represents the community command
var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Industry news, challenges and leaderboard",
	Long: `Industry news, challenges and the building leaderboard.

USAGE:
    wastewise community [OPTIONS]

OPTIONS:
    --tab <tab>          Tab: news, challenges, leaderboard (default: news)
    --category <name>    Leaderboard filter: Mall, Hotel, Hospital, Office
    --like <id>          Toggle the like on a news post
    -h, --help           Show this help

EXAMPLES:
    wastewise community                                # News feed
    wastewise community --tab leaderboard              # Full leaderboard
    wastewise community --tab leaderboard --category Mall
    wastewise community --like 2                       # Like a post`,
	RunE: runCommunity,
}

func runCommunity(cmd *cobra.Command, args []string) error {
	session, logger, err := newSession("community")
	if err != nil {
		return fmt.Errorf("community: %w", err)
	}
	defer func() {
		_ = session.Close()
		_ = logger.Shutdown()
	}()

	if communityLike != "" {
		session.ToggleLike(communityLike)
		for _, p := range session.Posts(domain.FilterState{}) {
			if p.ID == communityLike {
				fmt.Printf("%s — %d likes\n", p.Title, p.Likes)
			}
		}
		return nil
	}

	switch communityTab {
	case "", domain.TabNews:
		for _, p := range session.Posts(domain.FilterState{}) {
			liked := ""
			if p.Liked {
				liked = " ♥"
			}
			fmt.Printf("%-3s [%s] %s — %s (%d likes%s)\n", p.ID, p.Topic, p.Title, p.Author, p.Likes, liked)
		}
	case domain.TabChallenges:
		for _, c := range session.Challenges() {
			fmt.Printf("%-3s %-28s %3d%%  %d participants  due %s\n",
				c.ID, c.Title, c.ProgressPercent(), c.Participants, c.Deadline)
		}
	case domain.TabLeaderboard:
		state := domain.FilterState{Category: communityCategory}
		for _, e := range session.Leaderboard(state) {
			fmt.Printf("#%d %-22s %-9s %-4s diverted  ESG %d  %s\n",
				e.Rank, e.Name, e.BuildingType, e.WasteDiverted, e.ESGScore, e.Badge)
		}
	default:
		return fmt.Errorf("community: unknown tab: %s", communityTab)
	}
	return nil
}

func init() {
	communityCmd.Flags().StringVar(&communityTab, "tab", domain.TabNews, "community tab")
	communityCmd.Flags().StringVar(&communityCategory, "category", "", "leaderboard category filter")
	communityCmd.Flags().StringVar(&communityLike, "like", "", "toggle like on a post ID")
	rootCmd.AddCommand(communityCmd)
}
