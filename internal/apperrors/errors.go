package apperrors

// 错误码
const (
	ErrCodeInvalidAction = 1001 // 动作编号超出 0-103
	ErrCodeIllegalAction = 1002 // 动作不在当前合法集合中
	ErrCodeUnknownAction = 1003 // 无法识别的动作类型
	ErrCodeInconsistent  = 1004 // 内部状态不一致（引擎缺陷）
	ErrCodeDealUnderflow = 1005 // 牌堆不足
	ErrCodeInvalidSeat   = 1006 // 座位号不在 0-3
	ErrCodeGameOver      = 1007 // 游戏已结束
)

// GameError 游戏错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Is 按错误码比较，便于 errors.Is 识别包装后的错误
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	return ok && t.Code == e.Code
}

// 预定义错误
var (
	ErrInvalidAction = &GameError{Code: ErrCodeInvalidAction, Message: "无效的动作编号"}
	ErrIllegalAction = &GameError{Code: ErrCodeIllegalAction, Message: "不合法的动作"}
	ErrUnknownAction = &GameError{Code: ErrCodeUnknownAction, Message: "无法识别的动作"}
	ErrInconsistent  = &GameError{Code: ErrCodeInconsistent, Message: "内部状态不一致"}
	ErrDealUnderflow = &GameError{Code: ErrCodeDealUnderflow, Message: "牌堆剩余牌数不足"}
	ErrInvalidSeat   = &GameError{Code: ErrCodeInvalidSeat, Message: "无效的座位号"}
	ErrGameOver      = &GameError{Code: ErrCodeGameOver, Message: "游戏已结束"}
)
