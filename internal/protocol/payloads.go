package protocol

// --- 客户端请求 Payloads ---

// LoginPayload 设置昵称请求
type LoginPayload struct {
	Username string `json:"username"`
}

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建/加入房间请求
type CreateRoomPayload struct {
	RoomID string `json:"room_id"`
}

// StartGamePayload 开始一局请求
type StartGamePayload struct {
	RoomID string `json:"room_id"`
}

// RequestNemPayload 发起换牌请求
type RequestNemPayload struct {
	RoomID    string `json:"room_id"`
	CardIndex int    `json:"card_index"` // 要换出的手牌位置 0-2
}

// AcceptNemPayload 接受换牌请求
type AcceptNemPayload struct {
	RoomID   string `json:"room_id"`
	TargetID string `json:"target_id"` // 发起方的玩家 ID
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Offset int `json:"offset"` // 偏移量
	Limit  int `json:"limit"`  // 数量
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// LoggedInPayload 昵称设置成功响应
type LoggedInPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// RoomUpdatePayload 房间成员变动通知
type RoomUpdatePayload struct {
	RoomID  string       `json:"room_id"`
	Players []PlayerInfo `json:"players"`
}

// GameStartedPayload 一局开始通知，包含所有玩家的手牌
type GameStartedPayload struct {
	RoomID   string       `json:"room_id"`
	Players  []PlayerInfo `json:"players"`
	Duration int          `json:"duration"` // 本局倒计时（秒）
}

// NemOfferPayload 换牌请求通知
type NemOfferPayload struct {
	From string `json:"from"` // 发起方玩家 ID
	Name string `json:"name"` // 发起方昵称
}

// NemSuccessPayload 换牌成功通知
type NemSuccessPayload struct {
	From string `json:"from"` // 发起方昵称
	To   string `json:"to"`   // 接受方昵称
}

// YourCardsPayload 私发手牌更新
type YourCardsPayload struct {
	Cards []CardInfo `json:"cards"`
}

// RoundResultPayload 本局结算通知
type RoundResultPayload struct {
	RoomID  string       `json:"room_id"`
	Results []HandResult `json:"results"` // 按名次排序，第一名为赢家
	Winner  *HandResult  `json:"winner"`
}

// HandResult 单个玩家的结算信息
type HandResult struct {
	PlayerID   string     `json:"id"`
	PlayerName string     `json:"name"`
	Hand       []CardInfo `json:"hand"`
	TypeName   string     `json:"type"` // 牌型名称（如 Sáp、Liêng、Điểm 9）
	TypeRank   int        `json:"rank"` // 牌型等级
}

// RoomListResultPayload 房间列表结果
type RoomListResultPayload struct {
	Rooms []RoomListItem `json:"rooms"`
}

// RoomListItem 房间列表项
type RoomListItem struct {
	RoomID      string `json:"room_id"`
	PlayerCount int    `json:"player_count"`
	Playing     bool   `json:"playing"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerName string  `json:"player_name"`
	Rounds     int     `json:"rounds"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	Wins       int    `json:"wins"`
}

// OnlineCountPayload 在线人数结果
type OnlineCountPayload struct {
	Count int `json:"count"`
}

// ChatPayload 聊天消息（房间内广播）
type ChatPayload struct {
	SenderID   string `json:"sender_id,omitempty"`   // 发送者 ID（服务端填充）
	SenderName string `json:"sender_name,omitempty"` // 发送者昵称（服务端填充）
	RoomID     string `json:"room_id"`
	Content    string `json:"content"`        // 消息内容
	Time       int64  `json:"time,omitempty"` // 发送时间（服务端填充）
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- 通用数据结构 ---

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Cards     []CardInfo `json:"cards,omitempty"` // 仅在 game_started 中携带
	SwapsUsed int        `json:"swaps_used"`      // 已使用的换牌次数
}

// CardInfo 牌信息
type CardInfo struct {
	Suit  int    `json:"suit"`  // 花色: 0=黑桃, 1=红心, 2=梅花, 3=方块
	Rank  int    `json:"rank"`  // 点数: 1-13 (A=1, J=11, Q=12, K=13)
	Label string `json:"label"` // 展示用，如 ♠A
}
