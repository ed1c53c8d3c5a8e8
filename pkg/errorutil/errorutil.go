package errorutil

import (
	"errors"
	"fmt"
)

// Error 错误结构（区分阶段级致命错误与可跳过错误）
type Error struct {
	Message    string `json:"message"`
	Fatal      bool   `json:"fatal"`
	DevDetails string `json:"dev_details,omitempty"`
}

// Error 实现 error 接口
func (e *Error) Error() string {
	return e.Message
}

// FatalErr 创建致命错误（缺失模型工件、必要配置等，整个阶段必须中止）
func FatalErr(message string) *Error {
	return &Error{
		Message: message,
		Fatal:   true,
	}
}

// FatalWrap 包装底层错误为致命错误
func FatalWrap(message string, err error) *Error {
	return &Error{
		Message:    fmt.Sprintf("%s: %v", message, err),
		Fatal:      true,
		DevDetails: fmt.Sprintf("%+v", err),
	}
}

// Recoverable 创建可跳过错误（单表/单实体失败，其余处理继续）
func Recoverable(message string) *Error {
	return &Error{
		Message: message,
		Fatal:   false,
	}
}

// RecoverableWrap 包装底层错误为可跳过错误
func RecoverableWrap(message string, err error) *Error {
	return &Error{
		Message:    fmt.Sprintf("%s: %v", message, err),
		Fatal:      false,
		DevDetails: fmt.Sprintf("%+v", err),
	}
}

// IsFatal 判断错误是否为致命错误
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Fatal
	}
	return false
}
