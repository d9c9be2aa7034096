package worker

import "fmt"

// ExportNotifyMessage 通过 Redis Pub/Sub 推送给 WebSocket 层的导出结果。
type ExportNotifyMessage struct {
	Status        string `json:"status"`
	ExportID      uint   `json:"exportId"`
	CorrelationID string `json:"correlationId"`
	ErrorCode     int    `json:"errorCode"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

// ExportNotifyChannel 返回指定客户端的导出通知频道名。
// API 侧的 WebSocket 订阅逻辑必须使用同一命名。
func ExportNotifyChannel(clientID string) string {
	return fmt.Sprintf("export_notify:%s", clientID)
}
