package protocol

// 错误码
const (
	ErrCodeUnknown        = 1000
	ErrCodeInvalidMsg     = 1001
	ErrCodeRoomNotFound   = 2001
	ErrCodePlayerNotFound = 2002
	ErrCodeGameNotStart   = 3001
	ErrCodeSwapLimit      = 3002 // 换牌次数已用完
	ErrCodeNoPendingNem   = 3003 // 对方没有待处理的换牌请求
	ErrCodeInsufficient   = 3004 // 牌堆不足
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:        "未知错误",
	ErrCodeInvalidMsg:     "无效的消息格式",
	ErrCodeRoomNotFound:   "房间不存在",
	ErrCodePlayerNotFound: "玩家不存在",
	ErrCodeGameNotStart:   "本局尚未开始",
	ErrCodeSwapLimit:      "换牌次数已用完",
	ErrCodeNoPendingNem:   "对方没有待处理的换牌请求",
	ErrCodeInsufficient:   "牌堆剩余数量不足",
}
