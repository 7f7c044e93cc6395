// Package tools объявляет MCP-поверхность сервера: схемы тулзов, разбор
// аргументов в типизированные запросы и перевод ошибок в плоский текст.
package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Spok95/college-erp-mcp/internal/ctxutil"
	"github.com/Spok95/college-erp-mcp/internal/metrics"
	"github.com/Spok95/college-erp-mcp/internal/observability"
)

const serverName = "erp-mcp-server"
const serverVersion = "1.0.0"

type Server struct {
	mcp *server.MCPServer
	db  *mongo.Database
	log *zap.SugaredLogger
}

func New(m *mongo.Database, log *zap.SugaredLogger) *Server {
	s := &Server{
		db:  m,
		log: log,
		mcp: server.NewMCPServer(serverName, serverVersion,
			server.WithResourceCapabilities(false, false),
			server.WithRecovery(),
		),
	}
	s.registerStudentTools()
	s.registerFacultyTools()
	s.registerCourseTools()
	s.registerAttendanceTools()
	s.registerLeaveTools()
	s.registerTimetableTools()
	s.registerAnalyticsTools()
	s.registerExportTools()
	s.registerResources()
	return s
}

// ServeStdio блокирует до EOF на stdin или отмены.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// addTool вешает общий слой: счётчики, имя операции в контексте, sentry.
// Любая ошибка хендлера уходит наружу плоским текстом — протокол не знает
// структурированных кодов.
func (s *Server) addTool(tool mcp.Tool, h server.ToolHandlerFunc) {
	name := tool.Name
	s.mcp.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics.ToolCalls.WithLabelValues(name).Inc()
		ctx = ctxutil.WithOp(ctx, name)

		res, err := h(ctx, req)
		if err != nil {
			metrics.ToolErrors.WithLabelValues(name).Inc()
			observability.CaptureErr(err)
			s.log.Errorw("tool failed", "tool", name, "err", err)
			return mcp.NewToolResultError("Error in tool " + name + ": " + err.Error()), nil
		}
		if res != nil && res.IsError {
			metrics.ToolErrors.WithLabelValues(name).Inc()
		}
		return res, nil
	})
}

// jsonResult сериализует результат успешного вызова в текстовый контент.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError("Error serializing result: " + err.Error())
	}
	return mcp.NewToolResultText(string(b))
}
