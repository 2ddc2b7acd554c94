package notify

import "context"

// CodeSender delivers verification codes. Delivery failures are reported to
// the caller; no retries happen at this layer.
type CodeSender interface {
	SendEmailCode(ctx context.Context, email, code string) error
	SendSMSCode(ctx context.Context, mobile, code string) error
}
