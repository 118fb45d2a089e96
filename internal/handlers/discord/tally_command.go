package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/tallybot/tally/internal/expr"
	"github.com/tallybot/tally/internal/services/counting"
)

// TallyCommand handles the /tally command
type TallyCommand struct {
	BaseCommand
	countingService counting.Service
}

// NewTallyCommand creates a new tally command handler
func NewTallyCommand(countingService counting.Service) *TallyCommand {
	return &TallyCommand{
		BaseCommand: BaseCommand{
			Name:        "tally",
			Description: "Collaborative counting game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "eval",
					Description: "Try an expression without claiming a count",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "expression",
							Description: "The expression to evaluate",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show counting stats for the channel or one user",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "The user to look up",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the top counters",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "recent",
					Description: "Show the most recent claims",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset the count to zero",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "help",
					Description: "How to play",
				},
			},
		},
		countingService: countingService,
	}
}

// Handle processes a Discord interaction for the tally command
func (c *TallyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	// Get the user information
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	// Handle the appropriate subcommand
	sub := data.Options[0]

	var err error
	switch sub.Name {
	case "eval":
		err = c.handleEval(s, i, sub.Options[0].StringValue())
	case "stats":
		err = c.handleStats(s, i, sub)
	case "leaderboard":
		err = c.handleLeaderboard(s, i)
	case "recent":
		err = c.handleRecent(s, i)
	case "reset":
		err = c.handleReset(s, i, username)
	case "help":
		err = c.handleHelp(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleEval handles the eval subcommand
func (c *TallyCommand) handleEval(s *discordgo.Session, i *discordgo.InteractionCreate, expression string) error {
	ctx := context.Background()

	output, err := c.countingService.EvaluateExpression(ctx, &counting.EvaluateExpressionInput{
		Expression: expression,
	})
	if err != nil {
		// Evaluation errors are part of the game, not failures
		return RespondWithEphemeralMessage(s, i, evalErrorText(expression, err))
	}

	return RespondWithEphemeralMessage(s, i, output.Reply)
}

// evalErrorText turns an evaluation error into a friendly reply
func evalErrorText(expression string, err error) string {
	switch {
	case errors.Is(err, expr.ErrDisallowed):
		return fmt.Sprintf("`%s` uses something that isn't on the allowed list.", expression)
	case errors.Is(err, expr.ErrDomain):
		return fmt.Sprintf("`%s` has no numeric answer.", expression)
	case errors.Is(err, expr.ErrOverflow):
		return fmt.Sprintf("`%s` blows past what I can compute.", expression)
	default:
		return fmt.Sprintf("I couldn't parse `%s`.", expression)
	}
}

// handleStats handles the stats subcommand
func (c *TallyCommand) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	// With a user option, show that user's record
	if len(sub.Options) > 0 {
		user := sub.Options[0].UserValue(s)

		output, err := c.countingService.GetUserStats(ctx, &counting.GetUserStatsInput{
			UserID: user.ID,
		})
		if err != nil {
			log.Printf("Error getting user stats: %v", err)
			return RespondWithError(s, i, fmt.Sprintf("Failed to get stats: %v", err))
		}

		name := output.Stats.UserName
		if name == "" {
			name = user.Username
		}

		return RespondWithEmbed(s, i, fmt.Sprintf("🔢 Counting Stats: %s", name),
			renderUserStatsDescription(output.Stats), renderUserStatsFields(output.Stats))
	}

	// Without one, show the whole channel
	output, err := c.countingService.GetStatsSummary(ctx, &counting.GetStatsSummaryInput{})
	if err != nil {
		log.Printf("Error getting stats summary: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get stats: %v", err))
	}

	return RespondWithEmbed(s, i, "🔢 Counting Stats", renderSummaryDescription(output), nil)
}

// handleLeaderboard handles the leaderboard subcommand
func (c *TallyCommand) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.countingService.GetLeaderboard(ctx, &counting.GetLeaderboardInput{})
	if err != nil {
		log.Printf("Error getting leaderboard: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get leaderboard: %v", err))
	}

	if len(output.Entries) == 0 {
		return RespondWithMessage(s, i, "Nobody has counted yet. The first number is 1!")
	}

	return RespondWithEmbed(s, i, "🏆 Counting Leaderboard", renderLeaderboardEntries(output.Entries), nil)
}

// handleRecent handles the recent subcommand
func (c *TallyCommand) handleRecent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.countingService.GetRecentClaims(ctx, &counting.GetRecentClaimsInput{})
	if err != nil {
		log.Printf("Error getting recent claims: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get recent claims: %v", err))
	}

	return RespondWithEmbed(s, i, "🕘 Recent Claims", renderRecentClaims(output.Events), nil)
}

// handleReset handles the reset subcommand
func (c *TallyCommand) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate, username string) error {
	ctx := context.Background()

	output, err := c.countingService.ResetCount(ctx, &counting.ResetCountInput{
		RequestedBy: username,
	})
	if err != nil {
		log.Printf("Error resetting count: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to reset the count: %v", err))
	}

	// The reset announcement goes to the whole channel
	return RespondWithMessage(s, i, output.Reply)
}

// handleHelp handles the help subcommand
func (c *TallyCommand) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.countingService.GetHelp(ctx, &counting.GetHelpInput{})
	if err != nil {
		log.Printf("Error getting help text: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get help: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, output.Text)
}
