package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tallybot/tally/internal/services/counting"
)

// Bot represents the Discord bot instance
type Bot struct {
	session         *discordgo.Session
	commands        map[string]CommandHandler
	commandIDs      map[string]string // Maps command name to command ID
	countingService counting.Service
	config          *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// GameChannelID restricts the game to one channel. Empty means
	// every channel the bot can read is a game channel.
	GameChannelID string

	// Counting service
	CountingService counting.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.CountingService == nil {
		return nil, errors.New("counting service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Reading game messages needs the privileged message content intent
	session.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	bot := &Bot{
		session:         session,
		commands:        make(map[string]CommandHandler),
		commandIDs:      make(map[string]string),
		countingService: cfg.CountingService,
		config:          cfg,
	}

	// Register the event handlers
	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the tally command
	tallyCmd := NewTallyCommand(b.countingService)
	if err := b.RegisterCommand(tallyCmd); err != nil {
		return fmt.Errorf("failed to register tally command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// Register the command with Discord
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	// Route slash commands to their handler
	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
		}
	}
}

// handleMessageCreate runs every game channel message through the
// counting game and acknowledges the verdict
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bots, including ourselves
	if m.Author == nil || m.Author.Bot {
		return
	}

	if b.config.GameChannelID != "" && m.ChannelID != b.config.GameChannelID {
		return
	}

	text := strings.TrimSpace(m.Content)
	if text == "" {
		return
	}

	output, err := b.countingService.HandleCountMessage(context.Background(), &counting.HandleCountMessageInput{
		MessageID:  m.ID,
		ChannelID:  m.ChannelID,
		AuthorID:   m.Author.ID,
		AuthorName: authorDisplayName(m),
		Text:       text,
		Timestamp:  m.Timestamp,
	})
	if err != nil {
		switch {
		case errors.Is(err, counting.ErrQueueFull):
			// Tell the sender to try again rather than silently dropping
			log.Printf("Dropping message %s: queue is full", m.ID)
			b.react(s, m, "⏳")
		case errors.Is(err, counting.ErrShutdown), errors.Is(err, counting.ErrNotStarted):
			log.Printf("Ignoring message %s: game is not running", m.ID)
		default:
			log.Printf("Error processing message %s: %v", m.ID, err)
		}
		return
	}

	b.acknowledge(s, m, output)
}

// acknowledge reacts to a judged message and posts the reply, if any
func (b *Bot) acknowledge(s *discordgo.Session, m *discordgo.MessageCreate, output *counting.HandleCountMessageOutput) {
	for _, reaction := range output.Reactions {
		b.react(s, m, reaction)
	}

	if output.Reply == "" {
		return
	}

	if _, err := s.ChannelMessageSendReply(m.ChannelID, output.Reply, m.Reference()); err != nil {
		log.Printf("Error sending reply to message %s: %v", m.ID, err)
	}
}

func (b *Bot) react(s *discordgo.Session, m *discordgo.MessageCreate, emoji string) {
	if err := s.MessageReactionAdd(m.ChannelID, m.ID, emoji); err != nil {
		log.Printf("Error adding reaction to message %s: %v", m.ID, err)
	}
}

// authorDisplayName prefers the server nickname over the account name
func authorDisplayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}

	return m.Author.Username
}
