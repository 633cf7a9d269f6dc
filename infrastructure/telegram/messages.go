package telegram

// User-visible replies, in the product's language.
const (
	msgGreeting = "👋 ¡Hola! Soy FraiBot. Usa el comando /start para ver las opciones disponibles y obtener ayuda."

	msgIdeaHeader = "🌟 Aquí tienes una idea:\n\n"

	msgGenerationFailed = "Lo siento, no pude generar una respuesta. Por favor, inténtalo de nuevo."
	msgUnexpected       = "Ocurrió un error al procesar tu solicitud. Por favor, inténtalo de nuevo."

	msgUnsupportedFormat = "Formato de archivo no soportado. Sube un archivo Excel (.xlsx) o CSV."
	msgSchemaViolation   = "El archivo debe tener las columnas: correo, nombre y mensaje."
	msgFileFailed        = "Ocurrió un error al procesar el archivo. Por favor, inténtalo de nuevo."

	msgBatchAllSent = "📧 Correos enviados exitosamente! (%d enviados)"
	msgBatchPartial = "📧 Envío completado: %d de %d correos enviados."

	buttonEventIdeas   = "💡 Ideas para Eventos"
	buttonContentIdeas = "🎬 Ideas para contenido audiovisual"
	buttonAnotherIdea  = "🔄 Generar otra idea"
)
