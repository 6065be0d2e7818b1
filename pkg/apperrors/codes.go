package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeNoFileProvided   ErrorCode = "NO_FILE_PROVIDED"

	// Ресурсы
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeSlotNotFound ErrorCode = "SLOT_NOT_FOUND"
	CodeUserNotFound ErrorCode = "USER_NOT_FOUND"

	// Загрузка файлов
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"

	// Бизнес-логика
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserBlocked        ErrorCode = "USER_BLOCKED"
	CodeUserSuspended      ErrorCode = "USER_SUSPENDED"

	// Системные ошибки
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
	CodePersistenceFailed ErrorCode = "PERSISTENCE_FAILED"
)
