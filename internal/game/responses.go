package game

// Field names mirror the client protocol. Energy is truncated to an int
// for display everywhere; absent next-tier prices marshal as null.

type InitRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type InitResponse struct {
	Balance       int64  `json:"balance"`
	Energy        int    `json:"energy"`
	RodLevel      int    `json:"rod_level"`
	BoatLevel     int    `json:"boat_level"`
	RodPrice      *int64 `json:"rod_price"`
	BoatPrice     *int64 `json:"boat_price"`
	BaitCommon    int    `json:"bait_common"`
	BaitRare      int    `json:"bait_rare"`
	OfflineEarned int64  `json:"offline_earned"`
	AdsgramID     string `json:"adsgram_id"`
}

type FishResponse struct {
	Status     string `json:"status"`
	Balance    int64  `json:"balance"`
	Energy     int    `json:"energy"`
	AFKEarned  int64  `json:"afk_earned"`
	BaitCommon int    `json:"bait_common"`
	BaitRare   int    `json:"bait_rare"`

	// set only when Status is "caught"
	FishID    string  `json:"fish_id,omitempty"`
	FishEmoji string  `json:"fish_emoji,omitempty"`
	FishColor string  `json:"fish_color,omitempty"`
	Rarity    string  `json:"rarity,omitempty"`
	Reward    int64   `json:"reward"`
	Weight    float64 `json:"weight"`
	IsTrash   bool    `json:"is_trash"`
}

type UpgradeResponse struct {
	Success    bool   `json:"success"`
	Balance    int64  `json:"balance"`
	Energy     int    `json:"energy"`
	RodLevel   int    `json:"rod_level"`
	BoatLevel  int    `json:"boat_level"`
	RodPrice   *int64 `json:"rod_price"`
	BoatPrice  *int64 `json:"boat_price"`
	BaitCommon int    `json:"bait_common"`
	BaitRare   int    `json:"bait_rare"`
}

type AdRewardResponse struct {
	Success bool  `json:"success"`
	Balance int64 `json:"balance"`
	Energy  int   `json:"energy"`
	Reward  int64 `json:"reward"`
}

type LeaderboardEntry struct {
	Username string  `json:"username"`
	Value    float64 `json:"value"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Total       int                `json:"total"`
}
