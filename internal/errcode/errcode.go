package errcode

// 错误码约定：
// - 0：无错误
// - 4xxx：业务可恢复类错误（请求侧即可处理，不产生任务）
// - 5xxx：系统错误（任务失败，需要通知调用方）
const (
	OK = 0

	UnsupportedFormat  = 4001
	FileTooLarge       = 4002
	InvalidDraftFormat = 4003
	NotFound           = 4040

	SystemError           = 5000
	ExtractionFailure     = 5001
	RenderCaptureFailure  = 5002
	DocumentExportFailure = 5003
)
