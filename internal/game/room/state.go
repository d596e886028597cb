package room

// RoomState 房间状态
type RoomState int

const (
	RoomStateWaiting  RoomState = iota // 等待玩家加入
	RoomStatePlaying                   // 已发牌，倒计时进行中
	RoomStateResolved                  // 本局已结算，可重新开局
)
