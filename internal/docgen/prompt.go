package docgen

import (
	"fmt"
	"strings"
)

// CompletionMode selects how the remote service is asked for the payload.
type CompletionMode int

const (
	// ModeFreeform sends a single prompt and gets raw text back.
	ModeFreeform CompletionMode = iota
	// ModeChatJSON asks the service for a pre-validated JSON object.
	// Only usable for object-shaped payloads.
	ModeChatJSON
)

// ToneNone is the sentinel meaning no tone-reference document was supplied.
const ToneNone = "N/A"

// PromptSet is a fully-specified generation request for one schema.
type PromptSet struct {
	// System and User are used in ModeChatJSON; Freeform is the single
	// prompt for ModeFreeform.
	System   string
	User     string
	Freeform string
	Kind     PayloadKind
	Mode     CompletionMode
}

func styleTokenList() string {
	tokens := make([]string, 0, len(AllStyles()))
	for _, s := range AllStyles() {
		tokens = append(tokens, fmt.Sprintf("'%s'", s))
	}
	return strings.Join(tokens, ", ")
}

// BuildGeneralPrompt constructs the request for a general document: a JSON
// list of styled content blocks. The contract that the response must be
// nothing but the payload is stated in the prompt, but never trusted; the
// validator still runs.
func BuildGeneralPrompt(instruction, toneText string, mode CompletionMode) *PromptSet {
	if strings.TrimSpace(toneText) == "" {
		toneText = ToneNone
	}

	var b strings.Builder
	b.WriteString("PRIORIDAD ABSOLUTA: Tu única y exclusiva respuesta debe ser un JSON válido.\n")
	b.WriteString("Tu respuesta debe comenzar con un corchete de apertura [ y terminar con un corchete de cierre ].\n")
	b.WriteString("No escribas NADA antes del [ ni NADA después del ].\n\n")
	b.WriteString("Eres un abogado senior 'todoterreno' en México.\n\n")
	b.WriteString("FORMATO DE SALIDA OBLIGATORIO:\n")
	b.WriteString("Una lista de objetos JSON: [{\"style\": \"...\", \"text\": \"...\"}]\n\n")
	b.WriteString("REGLAS DE ESTILO OBLIGATORIAS:\n")
	fmt.Fprintf(&b, "- Los únicos valores permitidos para \"style\" son: %s.\n", styleTokenList())
	fmt.Fprintf(&b, "- Usa '%s' para todos los títulos.\n", StyleTitle)
	fmt.Fprintf(&b, "- Usa '%s' para el texto principal.\n", StyleJustified)
	fmt.Fprintf(&b, "- Usa '%s' para listas de cláusulas.\n", StyleNumberedClauses)
	fmt.Fprintf(&b, "- Usa '%s' para listas numeradas a mano.\n", StyleManualList)
	fmt.Fprintf(&b, "- Usa '%s' para las firmas.\n", StyleSignature)
	system := b.String()

	var u strings.Builder
	u.WriteString("EJEMPLOS DE TONO (PARA IMITAR):\n---\n")
	u.WriteString(toneText)
	u.WriteString("\n---\n\n[TAREA DEL USUARIO]:\n")
	u.WriteString(instruction)
	u.WriteString("\n\nRecuerda: Tu respuesta debe ser solo el JSON, empezando con [ y terminando con ].")
	user := u.String()

	// response_format json_object requires a top-level object, so the
	// general (list-shaped) schema always goes out freeform.
	return &PromptSet{
		System:   system,
		User:     user,
		Freeform: system + "\n" + user,
		Kind:     PayloadList,
		Mode:     ModeFreeform,
	}
}

// BuildNotePrompt constructs the request for a promissory note: one object
// with prose and an amortization schedule. The interest-tax arithmetic
// (16% of period interest, total = principal + interest + tax) is performed
// by the model; this system only renders what comes back.
func BuildNotePrompt(instruction, toneText string, mode CompletionMode) *PromptSet {
	if strings.TrimSpace(toneText) == "" {
		toneText = ToneNone
	}

	var b strings.Builder
	b.WriteString("PRIORIDAD ABSOLUTA: Tu única y exclusiva respuesta debe ser un objeto JSON válido.\n")
	b.WriteString("Tu respuesta debe comenzar con una llave de apertura { y terminar con una llave de cierre }.\n")
	b.WriteString("No escribas NADA antes del { ni NADA después del }.\n\n")
	b.WriteString("Eres un abogado senior 'todoterreno' en México, experto en documentos mercantiles.\n\n")
	b.WriteString("FORMATO DE SALIDA OBLIGATORIO:\n")
	b.WriteString("Un objeto JSON con dos claves principales: \"prosa\" y \"tabla_amortizacion\".\n\n")
	b.WriteString("1. CLAVE \"prosa\":\n")
	b.WriteString("   Una lista de objetos JSON para el texto principal del pagaré:\n")
	b.WriteString("   \"prosa\": [{\"style\": \"...\", \"text\": \"...\"}]\n")
	fmt.Fprintf(&b, "   - Los únicos valores permitidos para \"style\" son: %s.\n", styleTokenList())
	fmt.Fprintf(&b, "   - Usa '%s' para todos los títulos, '%s' para el texto principal y '%s' para las firmas.\n",
		StyleTitle, StyleJustified, StyleSignature)
	b.WriteString("   - Incluye en la prosa los montos calculados (intereses, IVA, total).\n\n")
	b.WriteString("2. CLAVE \"tabla_amortizacion\":\n")
	b.WriteString("   Una lista de objetos JSON con los datos de cada pago:\n")
	b.WriteString("   \"tabla_amortizacion\": [\n")
	b.WriteString("     {\"Pago No.\": 1, \"Interés\": 100.00, \"IVA Interés\": 16.00, \"Capital\": 900.00, \"Pago Total\": 1016.00, \"Saldo Insoluto\": 9100.00}\n")
	b.WriteString("   ]\n")
	b.WriteString("   REGLAS DE CÁLCULO Y FORMATO:\n")
	b.WriteString("   - El IVA del interés es el 16% del interés del periodo.\n")
	b.WriteString("   - El pago total es capital + interés + IVA del interés.\n")
	b.WriteString("   - Las claves deben coincidir con los encabezados: \"Pago No.\", \"Interés\", \"IVA Interés\", \"Capital\", \"Pago Total\", \"Saldo Insoluto\", en ese orden.\n")
	b.WriteString("   - Los valores deben ser números.\n")
	b.WriteString("   - No incluyas la fila de encabezados, solo los datos.\n")
	system := b.String()

	var u strings.Builder
	u.WriteString("EJEMPLOS DE TONO (PARA IMITAR):\n---\n")
	u.WriteString(toneText)
	u.WriteString("\n---\n\n[TAREA DEL USUARIO]:\n")
	u.WriteString(instruction)
	u.WriteString("\n\nRecuerda: Tu respuesta debe ser solo el JSON, empezando con { y terminando con }.")
	user := u.String()

	return &PromptSet{
		System:   system,
		User:     user,
		Freeform: system + "\n" + user,
		Kind:     PayloadObject,
		Mode:     mode,
	}
}
