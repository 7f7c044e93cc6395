package tools

import (
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Spok95/college-erp-mcp/internal/db"
)

// storeErr переводит ожидаемые ошибки хранилища в текст для клиента,
// остальное отдаёт наверх (addTool залогирует и завернёт сам).
// entity — заглавная форма для сообщений ("Student", "Leave request").
func storeErr(entity string, err error) (*mcp.CallToolResult, error) {
	switch {
	case errors.Is(err, db.ErrInvalidID):
		return mcp.NewToolResultError("Invalid " + lower(entity) + " ID format"), nil
	case errors.Is(err, db.ErrNotFound):
		return mcp.NewToolResultError(entity + " not found"), nil
	case errors.Is(err, db.ErrEmptyResult):
		return mcp.NewToolResultError("No records found"), nil
	}
	return nil, err
}

func lower(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
