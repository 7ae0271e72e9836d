package errors

var (
	// Domain errors — used in usecase/repository
	ErrUsernameTaken      = AlreadyExists("username is already taken")
	ErrUserNotFound       = NotFound("user not found")
	ErrInvalidUsername    = InvalidArg("username must be 4-30 chars, letters, numbers and underscores only")
	ErrInvalidPassword    = InvalidArg("password must be at least 8 characters long")
	ErrInvalidDisplayName = InvalidArg("display name must be between 2 and 30 characters")
	ErrInvalidCredentials = Unauthorized("invalid username or password")
	ErrInvalidToken       = Unauthorized("invalid or expired token")
	ErrNotAccountOwner    = Forbidden("cannot modify another user's account")
	ErrDemoRestricted     = Forbidden("demo accounts cannot perform this action. Create a free account to do it!")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}

func ErrUserDeleteIncomplete(cause error) error {
	return Wrap(CodeInternal, "user deletion incomplete, retry to finish cleanup", cause)
}
