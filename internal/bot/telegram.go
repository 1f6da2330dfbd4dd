package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"whale-watch/internal/domain"
	"whale-watch/internal/format"
	"whale-watch/internal/watch"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context) domain.Snapshot
}

// Bot serves the chat commands and doubles as the operator-channel
// dispatch capability for the alert job. Each command triggers its own
// independent snapshot build; there is no coordination with the
// timer-driven cycle.
type Bot struct {
	tb          *tele.Bot
	snapshots   SnapshotBuilder
	adminChatID int64
	whaleLimit  int
}

// New creates the bot, or (nil, nil) when no token is configured so
// the rest of the service keeps running without a chat surface.
func New(token string, adminChatID int64, whaleLimit int, snapshots SnapshotBuilder) (*Bot, error) {
	if token == "" {
		log.Info().Msg("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return nil, nil
	}
	if whaleLimit <= 0 {
		whaleLimit = 10
	}

	tb, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("create Telegram bot: %w", err)
	}

	b := &Bot{tb: tb, snapshots: snapshots, adminChatID: adminChatID, whaleLimit: whaleLimit}
	b.registerHandlers()
	return b, nil
}

// Start begins long polling in the background.
func (b *Bot) Start() {
	log.Info().Msg("Telegram bot started")
	go b.tb.Start()
}

// Dispatch sends one message to the operator channel.
func (b *Bot) Dispatch(ctx context.Context, text string) error {
	if b.adminChatID == 0 {
		return fmt.Errorf("no operator channel configured")
	}
	_, err := b.tb.Send(tele.ChatID(b.adminChatID), text)
	return err
}

func (b *Bot) registerHandlers() {
	b.tb.Handle("/start", func(c tele.Context) error {
		return c.Send(startMessage())
	})

	b.tb.Handle("/market", func(c tele.Context) error {
		snap := b.snapshots.BuildSnapshot(context.Background())
		return c.Send(marketMessage(snap, time.Now()))
	})

	b.tb.Handle("/flows", func(c tele.Context) error {
		snap := b.snapshots.BuildSnapshot(context.Background())
		return c.Send(flowsMessage(snap))
	})

	b.tb.Handle("/risk", func(c tele.Context) error {
		snap := b.snapshots.BuildSnapshot(context.Background())
		return c.Send(riskMessage(snap))
	})

	b.tb.Handle("/whales", func(c tele.Context) error {
		snap := b.snapshots.BuildSnapshot(context.Background())
		return c.Send(whalesMessage(snap, b.whaleLimit))
	})

	b.tb.Handle("/insight", func(c tele.Context) error {
		snap := b.snapshots.BuildSnapshot(context.Background())
		return c.Send(strings.Join(watch.DeriveInsight(snap, time.Now()), "\n"))
	})
}

func startMessage() string {
	return "👋 Whale Watch Bot\n\n" +
		"Use these commands:\n" +
		"/market — market overview\n" +
		"/flows — exchange inflow/outflow stats\n" +
		"/risk — stablecoin rotation metrics\n" +
		"/whales — recent whale transfers\n" +
		"/insight — market interpretation"
}

func marketMessage(s domain.Snapshot, now time.Time) string {
	symbol := s.Market.Symbol
	if symbol == "" {
		symbol = "ETH"
	}
	return fmt.Sprintf(
		"%s Market Overview\n\nPrice: %s (24h: %s)\n24h Volume: %s\nMarket Cap: %s\nAs of %s UTC",
		symbol,
		format.USD(s.Market.PriceUSD),
		format.SignedPct(s.Market.Change24hPct),
		format.USD(s.Market.Volume24hUSD),
		format.USD(s.Market.MarketCapUSD),
		now.UTC().Format("2006-01-02 15:04:05"),
	)
}

func flowsMessage(s domain.Snapshot) string {
	sentiment := s.ExchangeFlows.Sentiment
	if sentiment == "" {
		sentiment = "N/A"
	}
	return fmt.Sprintf(
		"Exchange Flows\n\nTotal Inflow: %s\nTotal Outflow: %s\nNet Flow: %s\nSentiment: %s",
		format.USD(s.ExchangeFlows.TotalInflow),
		format.USD(s.ExchangeFlows.TotalOutflow),
		format.USD(s.ExchangeFlows.NetFlow),
		sentiment,
	)
}

func riskMessage(s domain.Snapshot) string {
	ratio := "N/A"
	if s.Stablecoin.InflowRatioPct != nil {
		ratio = fmt.Sprintf("%.1f%%", *s.Stablecoin.InflowRatioPct)
	}
	mode := s.Stablecoin.Mode
	if mode == "" {
		mode = "N/A"
	}
	return fmt.Sprintf(
		"Stablecoin Rotation / Risk\n\nStablecoin Inflow Ratio: %s\nStablecoin Net Flow: %s\nMode: %s\n\nHigh inflow ratio → risk-off. Outflows → deploying to buy crypto.",
		ratio,
		format.USD(s.Stablecoin.NetFlow),
		mode,
	)
}

func whalesMessage(s domain.Snapshot, limit int) string {
	transfers := s.WhaleTransfers
	if len(transfers) == 0 {
		return "No recent whale transfers."
	}
	if limit > 0 && len(transfers) > limit {
		transfers = transfers[:limit]
	}

	lines := make([]string, 0, len(transfers)+1)
	lines = append(lines, "Recent Whale Transfers")
	for _, t := range transfers {
		lines = append(lines, fmt.Sprintf(
			"- %s %s → %s : %s",
			t.Token,
			format.ShortAddr(t.From),
			format.ShortAddr(t.To),
			format.USD(domain.Float(t.Amount)),
		))
	}
	return strings.Join(lines, "\n")
}
