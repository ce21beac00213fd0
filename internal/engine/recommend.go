package engine

import (
	"github.com/perspicuus/lcbft-cli/internal/model"
)

// recommendations maps each risk level to its fixed, ordered guidance.
// Strings may carry <b>…</b> emphasis; renderers that cannot display
// rich text strip it (see exporter.StripMarkup).
var recommendations = map[model.RiskLevel][]string{
	model.RiskTresEleve: {
		"<b>⚠ ATTENTION - Relation d'affaires fortement déconseillée</b> : En raison du niveau de risque extrême, l'établissement de toute relation commerciale doit être évitée sauf circonstances exceptionnelles avec justification métier impérieuse.",
		"Approbation direction générale obligatoire : Toute décision d'acceptation doit faire l'objet d'une validation par la direction générale après présentation d'un dossier complet justifiant l'intérêt commercial exceptionnel.",
		"Vérification d'identité exhaustive avec sources multiples : Mise en œuvre de contrôles renforcés incluant vérification documentaire approfondie, recoupement avec bases de données internationales et validation par sources tierces indépendantes.",
		"Documentation juridique complète et justification métier exceptionnelle : Constitution d'un dossier complet avec analyse des risques, justification économique de la relation et mise en place de mesures d'atténuation spécifiques.",
		"Déclaration de soupçon systématique à considérer : Évaluer la nécessité d'effectuer une déclaration de soupçon à TRACFIN compte tenu des éléments de risque identifiés et de la nature des opérations envisagées.",
		"Surveillance continue renforcée et reporting régulier : Mise en place d'un suivi quotidien des opérations avec reporting mensuel à la direction et revue trimestrielle du profil de risque.",
	},
	model.RiskEleve: {
		"Vérification d'identité renforcée : Mise en œuvre de contrôles complémentaires incluant vérification de l'adresse par courrier recommandé, consultation des bases de données de sanctions et PEP, et validation de l'activité professionnelle.",
		"Justification de l'origine des fonds : Obtenir et analyser les justificatifs détaillés de la provenance des capitaux (bulletins de salaire, déclarations fiscales, actes de vente, etc.) avec validation de leur cohérence.",
		"Supervision des transactions importantes : Mise en place d'un seuil de surveillance abaissé avec validation hiérarchique obligatoire pour toute opération dépassant les montants définis selon le profil client.",
		"Documentation détaillée : Constitution et mise à jour régulière d'un dossier client complet incluant l'ensemble des justificatifs, analyses de risque et décisions prises avec leur motivation.",
	},
	model.RiskModere: {
		"Mesures de vigilance habituelles : Application des procédures standard de connaissance client avec attention particulière aux éléments ayant généré le scoring de risque modéré.",
		"Vérification d'identité standard : Contrôle d'identité selon les procédures habituelles complété par une vérification ponctuelle de l'adresse et de l'activité déclarée.",
		"Surveillance périodique : Mise en place d'une revue semestrielle du profil client et surveillance des opérations inhabituelles par rapport au profil établi.",
	},
	model.RiskFaible: {
		"Mesures de vigilance simplifiées possibles : Application des mesures de vigilance allégées conformément à la réglementation, tout en maintenant les contrôles de base obligatoires.",
		"Vérification d'identité standard : Contrôle d'identité selon les procédures habituelles avec conservation des justificatifs réglementaires requis.",
		"Surveillance normale : Surveillance des opérations selon les seuils standard et revue annuelle du profil client dans le cadre du processus habituel de mise à jour.",
	},
}

// Recommendations returns the guidance list for a risk level. The
// returned slice is a copy; callers may not mutate the tables.
func Recommendations(level model.RiskLevel) []string {
	recs, ok := recommendations[level]
	if !ok {
		return nil
	}
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}
