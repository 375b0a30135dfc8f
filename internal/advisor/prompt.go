package advisor

import (
	"fmt"
	"strings"
)

const careerSystemPrompt = `You are a Global Talent Strategist for the energy sector. You map high-trajectory careers within well engineering following IOGP Report 476 progression standards.`

const bridgeSystemPrompt = `You are a Chief Well Engineering Mentor with 30 years of offshore experience. You explain wellbore physics through analogies that are mathematically sound, then lift the learner to IADC/IWCF level technicality.`

const quizSystemPrompt = `You write rigorous knowledge checks for trainee well engineers. Questions test understanding of engineering principles, not terminology.`

const auditSystemPrompt = `You are a Senior Talent Auditor for a global drilling contractor. You perform competency gap analyses against the IOGP Report 476 framework.`

func buildCareerMessage(interests, background string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interests: %s\n", interests)
	fmt.Fprintf(&b, "Background: %s\n\n", background)
	b.WriteString("Focus on:\n")
	b.WriteString("1. Mechanical-to-engineering bridge points.\n")
	b.WriteString("2. IADC/IWCF technical entry tiers (Level 1 awareness to Level 5 well design).\n")
	b.WriteString("3. The transition from field operations to technical well integrity.\n")
	return b.String()
}

func buildBridgeMessage(concept, hobby string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Build a technical bridge between the wellbore concept %q and the domain %q.\n\n", concept, hobby)
	b.WriteString("Requirements:\n")
	b.WriteString("- For hydrostatics, focus on P = rho*g*h and the omnidirectional nature of fluid head.\n")
	b.WriteString("- For well control, reference the move from primary (liquid) to secondary (mechanical) barriers.\n")
	b.WriteString("- Mention friction loss, dynamic simulation or gas solubility in oil-based mud where relevant.\n")
	b.WriteString("- The analogy must hold up numerically, for example mud weight against gear ratios.\n")
	return b.String()
}

func buildQuizMessage(title, content string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %d-question knowledge check for this lesson.\n\n", count)
	fmt.Fprintf(&b, "Lesson title: %s\n", title)
	fmt.Fprintf(&b, "Content: %s\n\n", content)
	b.WriteString("Each question needs at least two options, a zero-based correctIndex and a one-sentence explanation.\n")
	return b.String()
}

func buildAuditMessage(employment, strengths, weaknesses string) string {
	var b strings.Builder
	b.WriteString("Candidate history:\n")
	fmt.Fprintf(&b, "- Employment: %s\n", employment)
	fmt.Fprintf(&b, "- Strengths: %s\n", strengths)
	if weaknesses != "" {
		fmt.Fprintf(&b, "- Weaknesses: %s\n", weaknesses)
	}
	b.WriteString("\nScore transferability from 0 to 100.\n")
	return b.String()
}
