package errcode

// 错误码约定：
// - 0：无错误
// - 4xxx：业务可恢复/告警类错误（导出可以继续，仅提示用户）
// - 5xxx：系统错误（导出中断，需要重试）
const (
	OK              = 0
	ResourceMissing = 4004
	SystemError     = 5000
)
