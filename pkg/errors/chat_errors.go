package errors

import "fmt"

var (
	ErrChatNotFound       = NotFound("chat not found")
	ErrNotChatMember      = Forbidden("user is not a member of this chat")
	ErrNotChatAdmin       = Forbidden("user is not an admin of this chat")
	ErrNotInConversation  = Forbidden("not part of this conversation")
	ErrSelfDM             = InvalidArg("cannot start a direct message with yourself")
	ErrMissingTitle       = InvalidArg("chat must have a title")
	ErrTitleTooLong       = InvalidArg("chat must have a title of 50 characters maximum")
	ErrDescriptionTooLong = InvalidArg("description has a limit of 200 characters")
)

func ErrDMExists(username1, username2 string) error {
	return AlreadyExists(fmt.Sprintf("a direct message between %s and %s already exists", username1, username2))
}

func ErrChatDeleteIncomplete(cause error) error {
	return Wrap(CodeInternal, "chat deletion incomplete, retry to finish cleanup", cause)
}
