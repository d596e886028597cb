package apperrors

import (
	"github.com/vietcards/lieng-server/internal/protocol"
)

// GameError 游戏错误。按规则这类错误不回传给客户端，
// 只在房间层记录日志后忽略对应事件。
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound   = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrPlayerNotFound = &GameError{Code: protocol.ErrCodePlayerNotFound, Message: "玩家不存在"}
	ErrGameNotStart   = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "本局尚未开始"}
	ErrSwapLimit      = &GameError{Code: protocol.ErrCodeSwapLimit, Message: "换牌次数已用完"}
	ErrNoPendingNem   = &GameError{Code: protocol.ErrCodeNoPendingNem, Message: "对方没有待处理的换牌请求"}
)
