package constvars

// Defaults applied when no AI configuration row overrides them.
const (
	DefaultModelName       = "gpt-4o"
	DefaultModelTemp       = 0.7
	DefaultModelMaxTokens  = 2000
	ModelChatCompletionURL = "/chat/completions"
	ModelRoleSystem        = "system"
	ModelRoleUser          = "user"
)

const DefaultSystemPrompt = "Sei un analista esperto di questionari. Analizza le risposte fornite " +
	"e produci un report professionale e approfondito. Rispondi sempre in italiano. " +
	"Il report deve coprire tutte le sezioni identificate dagli shortcode forniti, " +
	"senza ometterne nessuna."

// DefaultUserPromptFormat embeds the JSON-serialized formatted answers and the
// JSON-serialized shortcode manifest, in that order.
const DefaultUserPromptFormat = "Di seguito trovi le risposte del questionario in formato JSON:\n\n%s\n\n" +
	"Genera i contenuti per le sezioni definite dai seguenti shortcode:\n\n%s\n\n" +
	"La risposta deve essere un oggetto JSON le cui chiavi sono i tipi di sezione " +
	"(text, chart, table); ogni chiave mappa i contenuti indicizzati per shortcode. " +
	"Tutti i contenuti devono essere in italiano."
