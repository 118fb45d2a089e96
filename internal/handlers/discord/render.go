package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tallybot/tally/internal/models"
	"github.com/tallybot/tally/internal/services/counting"
)

// Rank emojis for leaderboard entries
var rankEmojis = []string{"🥇", "🥈", "🥉"}

// renderSummaryDescription renders the channel-wide counting overview
func renderSummaryDescription(output *counting.GetStatsSummaryOutput) string {
	var description strings.Builder

	// Where the game stands right now
	description.WriteString(fmt.Sprintf("🔢 **Current count:** %d\n", output.State.CurrentCount))
	description.WriteString(fmt.Sprintf("🎯 **Next number:** %d\n", output.State.NextExpected()))
	description.WriteString(fmt.Sprintf("🔥 **Streak:** %d (best %d)\n\n", output.State.CurrentStreak, output.State.BestStreak))

	// Lifetime totals
	global := output.Global
	description.WriteString(fmt.Sprintf("📨 **Attempts:** %d (%d accepted, %d rejected)\n", global.TotalMessages, global.TotalAccepted, global.TotalRejected))
	description.WriteString(fmt.Sprintf("⛰️ **Highest count reached:** %d\n", global.HighestCountReached))

	if len(output.TopEntries) > 0 {
		description.WriteString("\n🏆 **Top counters**\n")
		description.WriteString(renderLeaderboardEntries(output.TopEntries))
	}

	return description.String()
}

// renderLeaderboardEntries renders ranked contributors, best first
func renderLeaderboardEntries(entries []*models.UserStats) string {
	var description strings.Builder

	for i, entry := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(rankEmojis) {
			rank = rankEmojis[i]
		}

		name := entry.UserName
		if name == "" {
			name = entry.UserID
		}

		description.WriteString(fmt.Sprintf("%s **%s**: %d counts", rank, name, entry.SuccessfulCounts))
		if entry.TotalAttempts() > 0 {
			description.WriteString(fmt.Sprintf(" (%.0f%% accuracy)", entry.Accuracy()*100))
		}
		description.WriteString("\n")
	}

	return description.String()
}

// renderUserStatsDescription renders the one-line flavor summary for a
// contributor
func renderUserStatsDescription(stats *models.UserStats) string {
	if stats.TotalAttempts() == 0 {
		return "No counts yet. The next number is waiting!"
	}

	return fmt.Sprintf("**%d** attempts, **%.0f%%** on target.", stats.TotalAttempts(), stats.Accuracy()*100)
}

// renderUserStatsFields renders the stat breakdown for a contributor
func renderUserStatsFields(stats *models.UserStats) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{
			Name:   "Accepted",
			Value:  fmt.Sprintf("%d", stats.SuccessfulCounts),
			Inline: true,
		},
		{
			Name:   "Missed",
			Value:  fmt.Sprintf("%d", stats.FailedAttempts),
			Inline: true,
		},
		{
			Name:   "Expression complexity",
			Value:  fmt.Sprintf("%d", stats.TotalComplexity),
			Inline: true,
		},
	}
}

// renderRecentClaims renders the latest judged attempts, newest first
func renderRecentClaims(events []*models.CountEvent) string {
	if len(events) == 0 {
		return "Nothing has been claimed yet. The first number is 1!"
	}

	var description strings.Builder

	for _, event := range events {
		mark := "✅"
		if !event.Accepted {
			mark = "❌"
		}

		name := event.UserName
		if name == "" {
			name = event.UserID
		}

		description.WriteString(fmt.Sprintf("%s `%s` by **%s**", mark, event.Expression, name))
		if event.Accepted {
			description.WriteString(fmt.Sprintf(" = %d", event.Count))
			if event.Milestone != "" {
				description.WriteString(" 🎉")
			}
		} else {
			description.WriteString(fmt.Sprintf(" (wanted %d)", event.Expected))
		}
		description.WriteString("\n")
	}

	return description.String()
}
