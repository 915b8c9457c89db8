package public

import (
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/provider"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler 前台/用户侧接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// dispatchEvents 将服务层事件推入队列；入队失败只记日志，不影响响应。
func (h *Handler) dispatchEvents(c *gin.Context, events []service.Event) {
	if len(events) == 0 || h.QueueClient == nil {
		return
	}
	if err := h.QueueClient.DispatchEvents(events); err != nil {
		requestLog(c).Warnw("dispatch_events_failed", "error", err)
	}
}
