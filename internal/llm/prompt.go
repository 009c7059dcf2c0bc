package llm

import (
	"fmt"
	"strings"

	"github.com/mfortin/dv-analyzer/internal/checklist"
)

// Instruction templates sent ahead of the document data. The wording,
// including the output format contract, is what the report parser's section
// and label patterns are tuned to, so treat changes here as parser changes.
const specializedInstructions = `<Instruction> You are an expert real estate assistant specializing in form validation and compliance analysis. Your task is to analyze a "Déclarations du vendeur" (DV) form based on a detailed validation table that outlines expected responses, required documents, and critical checks for each section (DV1 to DV16).  The first pdf document is the report to analyze. The second xlsx document is the validation table/checklist that provides the criteria for analysis.  You must: Evaluate conformity of each section (DV1 to DV16) by comparing the form content with the validation table.  Find also the name of the person who's selling and who's buying the estate in the signature part. Identify issues and provide specialized guidance formatted specifically in two key areas: 1. Recommended Actions - Specific steps to take to resolve issues 2. Warnings - Critical issues that need immediate attention  </Instruction>  Format your output in the following specialized format: # RAPPORT D'ANALYSE: [form number]  </br> ## Aperçu du Document - **Vendeur(s)**: [Names] - **Date**: [Date] - **Type de Propriété**: [Type] - **Score Global**: [score]%  </br> ## Actions Recommandées **Section**: [Section] **Action Requise**: [Specific action] **Priorité**: [High/Medium/Low] **Échéancier**: [Immediate/Within X days]</br> </br>  ## Avertissements **Risque Level**: [Critical/High/Medium] **Issue**: [Issue description] **Conséquences Potentielles**: [Consequences] **Atténuation**: [Mitigation approach]</br> </br>  ## Résumé de l'Analyse [Brief summary paragraph with overall assessment]
    Give the output in French language only!!
    `

const standardInstructions = `
        <Instruction>
        You are an expert real estate assistant specializing in form validation and compliance analysis. Your task is to analyze a "Déclarations du vendeur" (DV) form based on a detailed validation table that outlines expected responses, required documents, and critical checks for each section (DV1 to DV16).

        The first pdf document is the report to analyze. The second xlsx document is the validation table/checklist that provides the criteria for analysis.

        You must:
        Evaluate conformity of each section (DV1 to DV16) by comparing the form content with the validation table.

        Identify:
        ✅ Conforming elements (complete, clear, and documented)
        🟡 Partial elements (missing minor info, ambiguous, incomplete)
        🔴 Critical non-conformities (missing required documentation or information that creates risk)

        Give a conformity score as a percentage based on overall completeness and correctness.
        </Instruction>

        Format your output as follows:
        DV [form number] : [score]% Voici l'évaluation complète du formulaire "Déclarations du vendeur" (DV) de [NOM VENDEUR(S)], daté du [DATE], pour un immeuble résidentiel de moins de 5 logements.

        1. SCORE DE CONFORMITÉ GÉNÉRAL : [score]% – [niveau de conformité : Conforme, Conforme avec points à bonifier, Non conforme]
        Résumé de l'état général du document (structure, signatures, etc.).

        2. ÉLÉMENTS CONFORMES :
        Section
        Détails conformes
        (List each conforming DV section with relevant details.)

        3. OBSERVATIONS / POINTS À BONIFIER
        Section
        Problème détecté
        Recommandation
        (List each partially conforming section, what's missing, and how to fix it.)

        4. POINTS À CORRIGER POUR ÉVITER RISQUES :
        Section
        Risque identifié
        Action immédiate
        (List critical issues and what must be corrected.)

        5. RECOMMANDATIONS À L'AGENCE / COURTIER
        (Add specific recommendations for the agency or broker based on observed patterns or recurring mistakes.)

        6. CONCLUSION
        (Summarize if the form is valid, under what conditions, and what documents must be urgently provided.)

        Important Notes for Evaluation:
        Use section D15 for details if "oui" is checked elsewhere.
        Require Annexe G where applicable (for technical/maintenance details).
        Require original or attached documents (e.g. inspection reports, invoices).
        A missing signature or D15 clarification on a critical item may invalidate the form.
        `

// BuildSpecializedPrompt combines the specialized instructions with the
// extracted document text and the rendered checklist.
func BuildSpecializedPrompt(pdfText, checklistTable string) string {
	return specializedInstructions + "\n\n Analyse:" + pdfText + " \n\n Using: " + checklistTable
}

// BuildStandardPrompt combines the narrative instructions with the
// rule-based conformity findings and the rendered checklist.
func BuildStandardPrompt(findings, checklistTable string) string {
	return standardInstructions + "\n\n Analyse:" + findings + " \n\n Using:" + checklistTable
}

// RenderChecklistTable renders checklist rows as the plain table embedded in
// both prompts.
func RenderChecklistTable(rows []checklist.Row) string {
	var sb strings.Builder
	sb.WriteString("Code form. | Nom de la clause | Éléments de validation\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "%s | %s | %s\n", row.Code, row.ClauseName, row.ValidationText)
	}
	return sb.String()
}
