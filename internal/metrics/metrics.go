package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CastsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fishbot_casts_total",
		Help: "The total number of fishing attempts, by outcome status",
	}, []string{"status"})

	PurchasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fishbot_purchases_total",
		Help: "The total number of upgrade purchases, by item and result",
	}, []string{"item", "result"})

	AdRewardsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fishbot_ad_rewards_total",
		Help: "The total number of redeemed ad rewards",
	})

	LeaderboardQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fishbot_leaderboard_queries_total",
		Help: "The total number of leaderboard queries served",
	})

	LeaderboardErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fishbot_leaderboard_errors_total",
		Help: "The total number of leaderboard aggregation failures returned degraded",
	})

	PlayersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fishbot_players_created_total",
		Help: "The total number of first-seen players created on init",
	})
)
