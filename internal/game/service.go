package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/lakeview-games/fishbot/internal/economy"
	"github.com/lakeview-games/fishbot/internal/fish"
	"github.com/lakeview-games/fishbot/internal/keylock"
	"github.com/lakeview-games/fishbot/internal/logger"
	"github.com/lakeview-games/fishbot/internal/metrics"
	"github.com/lakeview-games/fishbot/internal/store"
)

// ErrPlayerNotFound reports an action against an identifier that was
// never initialized.
var ErrPlayerNotFound = store.ErrNotFound

// Service is the action engine facade: it sequences accrual, catch
// resolution, upgrades and leaderboard reads around a per-player
// load/commit boundary. Concurrent requests for one player are
// serialized by a keyed lock; distinct players run in parallel.
type Service struct {
	store     store.Store
	tables    *economy.Tables
	table     *fish.Table
	resolver  *economy.Resolver
	clock     Clock
	locks     *keylock.KeyedLock
	log       *logger.Logger
	adsgramID string
}

func New(
	st store.Store,
	tables *economy.Tables,
	table *fish.Table,
	resolver *economy.Resolver,
	clk Clock,
	log *logger.Logger,
	adsgramID string,
) *Service {
	if clk == nil {
		clk = RealClock{}
	}
	return &Service{
		store:     st,
		tables:    tables,
		table:     table,
		resolver:  resolver,
		clock:     clk,
		locks:     keylock.New(),
		log:       log,
		adsgramID: adsgramID,
	}
}

// Init loads or creates the player, refreshes display fields, credits
// offline progress for returning players and echoes the current state.
// Creation is idempotent: the first call for an identifier wins.
func (s *Service) Init(ctx context.Context, req InitRequest) (*InitResponse, error) {
	unlock := s.locks.Lock(req.TelegramID)
	defer unlock()

	now := s.clock.Now()

	var earned int64
	p, err := s.store.GetPlayer(ctx, req.TelegramID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		p = economy.NewPlayer(req.TelegramID, now.Unix())
		p.SetDisplayFields(req.Username, req.FirstName, req.LastName)
		metrics.PlayersCreatedTotal.Inc()
	case err != nil:
		return nil, fmt.Errorf("load player: %w", err)
	default:
		p.SetDisplayFields(req.Username, req.FirstName, req.LastName)
		earned = s.tables.Accrue(p, now.Unix(), false)
	}

	if err := s.store.Commit(ctx, p, nil); err != nil {
		return nil, fmt.Errorf("commit init: %w", err)
	}

	return &InitResponse{
		Balance:       p.Balance,
		Energy:        int(p.Energy),
		RodLevel:      p.RodLevel,
		BoatLevel:     p.BoatLevel,
		RodPrice:      pricePtr(s.tables.NextRodPrice(p.RodLevel)),
		BoatPrice:     pricePtr(s.tables.NextBoatPrice(p.BoatLevel)),
		BaitCommon:    p.BaitCommon,
		BaitRare:      p.BaitRare,
		OfflineEarned: earned,
		AdsgramID:     s.adsgramID,
	}, nil
}

// Fish runs one casting attempt end to end. The accrual side effects
// commit even when the attempt is rejected by cooldown or energy, so a
// rejected call can still report nonzero afk earnings.
func (s *Service) Fish(ctx context.Context, telegramID int64) (*FishResponse, error) {
	unlock := s.locks.Lock(telegramID)
	defer unlock()

	p, err := s.store.GetPlayer(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := s.resolver.AttemptCatch(p, now)

	var record *fish.Catch
	if out.Status == economy.StatusCaught {
		record = &fish.Catch{
			UserID:   telegramID,
			FishID:   out.Entry.ID,
			Weight:   out.Weight,
			IsTrash:  out.Entry.IsTrash,
			Reward:   out.Reward,
			CaughtAt: now,
		}
	}

	if err := s.store.Commit(ctx, p, record); err != nil {
		return nil, fmt.Errorf("commit catch: %w", err)
	}
	metrics.CastsTotal.WithLabelValues(string(out.Status)).Inc()

	resp := &FishResponse{
		Status:     string(out.Status),
		Balance:    p.Balance,
		Energy:     int(p.Energy),
		AFKEarned:  out.AFKEarned,
		BaitCommon: p.BaitCommon,
		BaitRare:   p.BaitRare,
	}
	if out.Status == economy.StatusCaught {
		resp.FishID = out.Entry.ID
		resp.FishEmoji = out.Entry.Emoji
		resp.FishColor = out.Entry.Color
		resp.Rarity = s.table.Tier(out.Entry.ID).String()
		resp.Reward = out.Reward
		resp.Weight = out.Weight
		resp.IsTrash = out.Entry.IsTrash
	}
	return resp, nil
}

// Upgrade applies one purchase. Validation failures come back as
// success=false, never as an error.
func (s *Service) Upgrade(ctx context.Context, telegramID int64, itemID string) (*UpgradeResponse, error) {
	unlock := s.locks.Lock(telegramID)
	defer unlock()

	p, err := s.store.GetPlayer(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	s.tables.Accrue(p, now.Unix(), true)

	ok := s.tables.Purchase(p, itemID)

	if err := s.store.Commit(ctx, p, nil); err != nil {
		return nil, fmt.Errorf("commit upgrade: %w", err)
	}

	result := "rejected"
	if ok {
		result = "ok"
	}
	metrics.PurchasesTotal.WithLabelValues(itemID, result).Inc()

	return &UpgradeResponse{
		Success:    ok,
		Balance:    p.Balance,
		Energy:     int(p.Energy),
		RodLevel:   p.RodLevel,
		BoatLevel:  p.BoatLevel,
		RodPrice:   pricePtr(s.tables.NextRodPrice(p.RodLevel)),
		BoatPrice:  pricePtr(s.tables.NextBoatPrice(p.BoatLevel)),
		BaitCommon: p.BaitCommon,
		BaitRare:   p.BaitRare,
	}, nil
}

// AdReward grants the ad-watch payout and refills energy. An unknown
// player yields success=false with no mutation.
func (s *Service) AdReward(ctx context.Context, telegramID int64) (*AdRewardResponse, error) {
	unlock := s.locks.Lock(telegramID)
	defer unlock()

	p, err := s.store.GetPlayer(ctx, telegramID)
	if errors.Is(err, store.ErrNotFound) {
		return &AdRewardResponse{Success: false}, nil
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	s.tables.Accrue(p, now.Unix(), true)

	reward := s.tables.AdReward(p.RodLevel)
	p.Balance += reward
	p.Energy = economy.MaxEnergy

	if err := s.store.Commit(ctx, p, nil); err != nil {
		return nil, fmt.Errorf("commit ad reward: %w", err)
	}
	metrics.AdRewardsTotal.Inc()

	return &AdRewardResponse{
		Success: true,
		Balance: p.Balance,
		Energy:  int(p.Energy),
		Reward:  reward,
	}, nil
}

func pricePtr(v int64, ok bool) *int64 {
	if !ok {
		return nil
	}
	return &v
}
