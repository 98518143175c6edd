package i18n

var enUS = map[Key]string{
	KeyUnauthorized:           "You are not allowed to access this time vault, please ask @{adminAlias} to add you. Your ID is: {senderId}",
	KeyUnsupportedMessageType: "Only video, audio, photo, video note, and voice messages are supported.",
	KeyForwardFailed:          "Sorry, there was an error forwarding your message. Please try again later.",
	KeyCommandIDGroupID:       "Group ID: `{groupId}`",
	KeyCommandIDYourID:        "Your ID: `{senderId}`",
}

var esES = map[Key]string{
	KeyUnauthorized:           "No tienes permitido acceder a esta cápsula del tiempo, por favor pide a @{adminAlias} que te agregue. Tu ID es: {senderId}",
	KeyUnsupportedMessageType: "Solo se admiten videos, audios, fotos, notas de video y mensajes de voz.",
	KeyForwardFailed:          "Lo sentimos, hubo un error al reenviar tu mensaje. Por favor, inténtalo de nuevo más tarde.",
	KeyCommandIDGroupID:       "ID del Grupo: `{groupId}`",
	KeyCommandIDYourID:        "Tu ID: `{senderId}`",
}

var dictionaries = map[Language]map[Key]string{
	LanguageEnUS: enUS,
	LanguageEsES: esES,
}
