package apperrors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vietcards/lieng-server/internal/protocol"
)

func TestGameErrorImplementsError(t *testing.T) {
	t.Parallel()

	var err error = ErrSwapLimit
	assert.Equal(t, "换牌次数已用完", err.Error())
	assert.Equal(t, protocol.ErrCodeSwapLimit, ErrSwapLimit.Code)
}
