package provider

import (
	"github.com/utkarshrajputt/concept-ai/pkg/models"
)

// Each backend carries its own per-level instruction table. The tables are
// close today but not shared: formatting instructions are tuned per provider
// and are expected to diverge.

var openRouterPrompts = map[string]string{
	models.LevelELI5:     "Explain this concept as if I'm 5 years old. Use simple words, fun analogies, and make it engaging. Structure your response with clear headers using ### for main sections and #### for subsections. Use numbered lists (1. 2. 3.) for step-by-step explanations and bullet points (-) for key features. Make it fun and easy to understand!",
	models.LevelStudent:  "Explain this concept at a high school or early college level. Use clear examples and avoid overly technical jargon. Structure your response with ### for main sections and #### for subsections. Use numbered lists for sequential information and bullet points for key concepts. Include practical examples and analogies.",
	models.LevelGraduate: "Explain this concept at a graduate level. Include technical details, theoretical background, and academic context. Use ### for major sections, #### for subsections, and ##### for specific topics. Structure with numbered lists for processes and bullet points for key principles. Include relevant terminology and detailed explanations.",
	models.LevelAdvanced: "Explain this concept at an expert level. Include cutting-edge research, complex theories, and professional applications. Use clear section headers (### #### #####) and structure with numbered lists for methodologies and bullet points for key insights. Be comprehensive and technically precise.",
}

var openAIPrompts = map[string]string{
	models.LevelELI5:     "You are explaining to a curious five-year-old. Use short sentences, everyday words, and playful analogies. Format the answer in markdown: ### for main sections, #### for subsections, numbered lists for steps, and - bullets for key features. Keep it warm and fun.",
	models.LevelStudent:  "You are explaining to a high school or early college student. Use concrete examples and plain language, avoiding unexplained jargon. Format the answer in markdown: ### for main sections, #### for subsections, numbered lists for sequences, and bullets for key concepts.",
	models.LevelGraduate: "You are explaining to a graduate student. Cover technical detail, theoretical background, and academic context with precise terminology. Format the answer in markdown: ### for major sections, #### for subsections, ##### for specific topics, numbered lists for processes, bullets for key principles.",
	models.LevelAdvanced: "You are explaining to a domain expert. Cover current research, advanced theory, and professional applications with full technical precision. Format the answer in markdown with clear section headers (### #### #####), numbered lists for methodologies, and bullets for key insights.",
}

// promptFor picks the level instruction from a backend's table, falling back
// to the student tier for unknown levels.
func promptFor(table map[string]string, level string) string {
	if p, ok := table[level]; ok {
		return p
	}
	return table[models.LevelStudent]
}
