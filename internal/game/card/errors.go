package card

import "errors"

// ErrInsufficientCards 牌堆剩余数量不足
var ErrInsufficientCards = errors.New("牌堆剩余数量不足")
