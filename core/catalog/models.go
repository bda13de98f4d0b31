package catalog

// Difficulty levels, in the product's language.
const (
	DifficultyBeginner     = "Principiante"
	DifficultyIntermediate = "Intermedio"
	DifficultyAdvanced     = "Avanzado"
)

// Categories lists every lesson category shown by the academy view;
// CategoryAll is the no-filter pseudo category.
const CategoryAll = "Todos"

var Categories = []string{CategoryAll, "NLP", "Creatividad", "Visión", "Ética", "Código"}

// Lesson is a static catalog entry; the catalog has no lifecycle.
type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
	Content     string `json:"content"`
}

var lessons = []Lesson{
	{
		ID:          "1",
		Title:       "Fundamentos de LLMs",
		Description: "Aprende cómo funcionan los Large Language Models desde su arquitectura Transformer.",
		Difficulty:  DifficultyBeginner,
		Category:    "NLP",
		Content: "# Los Cimientos de la IA Moderna\n\n" +
			"Los Large Language Models se entrenan sobre corpus masivos de texto para predecir " +
			"el siguiente token. La arquitectura Transformer, con su mecanismo de atención, " +
			"permite modelar dependencias de largo alcance sin recurrencia.",
	},
	{
		ID:          "2",
		Title:       "Generación de Imágenes con Difusión",
		Description: "Técnicas avanzadas para modelos como Stable Diffusion y Midjourney.",
		Difficulty:  DifficultyIntermediate,
		Category:    "Creatividad",
		Content: "# Difusión Latente\n\n" +
			"Los modelos de difusión aprenden a revertir un proceso de ruido progresivo. " +
			"Operar en el espacio latente reduce el costo de cómputo y habilita la generación " +
			"guiada por texto mediante encoders como CLIP.",
	},
	{
		ID:          "3",
		Title:       "Prompt Engineering Maestro",
		Description: "Domina el arte de comunicarte con máquinas para obtener resultados óptimos.",
		Difficulty:  DifficultyAdvanced,
		Category:    "Habilidades",
		Content: "# El Arte del Prompt\n\n" +
			"Un buen prompt fija rol, contexto, formato de salida y criterios de calidad. " +
			"Técnicas como few-shot, chain-of-thought y descomposición de tareas elevan " +
			"la fiabilidad de las respuestas.",
	},
}
