package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgLogin MessageType = "login" // 设置昵称
	MsgPing  MessageType = "ping"  // 心跳 ping

	// 房间操作
	MsgCreateRoom  MessageType = "create_room"   // 创建/加入房间
	MsgGetRoomList MessageType = "get_room_list" // 获取房间列表

	// 游戏操作
	MsgStartGame  MessageType = "start_game"  // 开始一局
	MsgRequestNem MessageType = "request_nem" // 发起换牌请求
	MsgAcceptNem  MessageType = "accept_nem"  // 接受换牌请求

	// 信息查询
	MsgGetStats       MessageType = "get_stats"        // 获取个人统计
	MsgGetLeaderboard MessageType = "get_leaderboard"  // 获取排行榜
	MsgGetOnlineCount MessageType = "get_online_count" // 获取在线人数
	MsgChat           MessageType = "chat"             // 聊天消息
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgLoggedIn  MessageType = "logged_in" // 昵称设置成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 房间相关
	MsgRoomUpdate     MessageType = "room_update"      // 房间成员变动
	MsgRoomListResult MessageType = "room_list_result" // 房间列表结果

	// 游戏流程
	MsgGameStarted MessageType = "game_started" // 发牌完成，一局开始
	MsgNemOffer    MessageType = "nem_offer"    // 有人发起换牌
	MsgNemSuccess  MessageType = "nem_success"  // 换牌成功
	MsgYourCards   MessageType = "your_cards"   // 私发手牌更新
	MsgRoundResult MessageType = "round_result" // 本局结算

	// 信息查询
	MsgStatsResult       MessageType = "stats_result"       // 个人统计结果
	MsgLeaderboardResult MessageType = "leaderboard_result" // 排行榜结果
	MsgOnlineCount       MessageType = "online_count"       // 在线人数结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
