package i18n

// Key identifies a bot-facing message template.
type Key string

// Language is a BCP 47 style language tag.
type Language string

// Replacements maps placeholder names to values substituted into a template.
type Replacements map[string]any

const (
	KeyUnauthorized           Key = "unauthorized"
	KeyUnsupportedMessageType Key = "unsupportedMessageType"
	KeyForwardFailed          Key = "forwardFailed"
	KeyCommandIDGroupID       Key = "commands.id.groupId"
	KeyCommandIDYourID        Key = "commands.id.yourId"
)

const (
	LanguageEnUS Language = "en-US"
	LanguageEsES Language = "es-ES"

	DefaultLanguage = LanguageEnUS
)

// Keys is the closed set of message keys every dictionary must cover.
var Keys = []Key{
	KeyUnauthorized,
	KeyUnsupportedMessageType,
	KeyForwardFailed,
	KeyCommandIDGroupID,
	KeyCommandIDYourID,
}
