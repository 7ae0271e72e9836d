package errors

var (
	ErrEmptyMessage       = InvalidArg("message must have text content or an attachment")
	ErrMessageTooLong     = InvalidArg("max length of message: 250 characters")
	ErrMessageNotFound    = NotFound("message not found")
	ErrEmptyAttachment    = InvalidArg("attachment file is empty")
	ErrAttachmentTooLarge = InvalidArg("attachment exceeds the maximum file size")
	ErrNotAnImage         = InvalidArg("file must be an image")
)
