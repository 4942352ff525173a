// Package brochure derives promotional copy for the portfolio from the
// owner's records through an external text-generation service. It never
// surfaces a generation failure: every path ends in usable French text.
package brochure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"portfolio-admin/internal/application/service"
	"portfolio-admin/internal/domain/personal"
	"portfolio-admin/internal/domain/project"
	"portfolio-admin/internal/domain/skill"
	"portfolio-admin/internal/domain/testimonial"
	"portfolio-admin/pkg/logger"
)

type BrochureText struct {
	Introduction      string `json:"introduction"`
	ProjectHighlights string `json:"projectHighlights"`
	Conclusion        string `json:"conclusion"`
}

var placeholderText = BrochureText{
	Introduction:      "Une introduction personnalisée sera bientôt disponible. Veuillez compléter les informations du portfolio.",
	ProjectHighlights: "Les points forts des projets seront bientôt mis en évidence. Veuillez ajouter des projets.",
	Conclusion:        "Une conclusion engageante sera bientôt disponible. Veuillez compléter les informations du portfolio.",
}

var failureText = BrochureText{
	Introduction:      "L'introduction n'a pas pu être générée. Veuillez vérifier la configuration de l'IA ou réessayer plus tard.",
	ProjectHighlights: "Les points forts des projets n'ont pas pu être générés.",
	Conclusion:        "La conclusion n'a pas pu être générée.",
}

var overloadedText = BrochureText{
	Introduction:      "Le service de génération est momentanément surchargé. Veuillez réessayer dans quelques instants.",
	ProjectHighlights: "Les points forts des projets seront générés dès que le service sera à nouveau disponible.",
	Conclusion:        "Veuillez réessayer la génération un peu plus tard.",
}

const reformulateApology = "La reformulation/suggestion n'a pas pu être générée pour le moment."

// Lister is the read side of the content gateway for one record kind.
type Lister[T any] interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*T, error)
}

type PersonalReader interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*personal.PersonalData, error)
}

type UseCase struct {
	personalData PersonalReader
	projects     Lister[project.Project]
	skills       Lister[skill.Skill]
	testimonials Lister[testimonial.Testimonial]
	llm          service.LLMService
	cache        service.BrochureCache
	logger       logger.Logger
}

func NewUseCase(
	personalData PersonalReader,
	projects Lister[project.Project],
	skills Lister[skill.Skill],
	testimonials Lister[testimonial.Testimonial],
	llm service.LLMService,
	cache service.BrochureCache,
	log logger.Logger,
) *UseCase {
	return &UseCase{
		personalData: personalData,
		projects:     projects,
		skills:       skills,
		testimonials: testimonials,
		llm:          llm,
		cache:        cache,
		logger:       log,
	}
}

var tracer = otel.Tracer("brochure_usecase")

// Generate loads the owner's records and returns the three prose
// blocks, serving a cached copy when one exists.
func (uc *UseCase) Generate(ctx context.Context, ownerID uuid.UUID) (*BrochureText, error) {
	ctx, span := tracer.Start(ctx, "Generate")
	defer span.End()

	if uc.cache != nil {
		if payload, err := uc.cache.Get(ctx, ownerID); err == nil {
			var cached BrochureText
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	data, err := uc.personalData.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projects.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	skills, err := uc.skills.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	testimonials, err := uc.testimonials.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	text, generated := uc.GenerateText(ctx, data, projects, skills, testimonials)

	if generated && uc.cache != nil {
		if payload, err := json.Marshal(text); err == nil {
			if err := uc.cache.Set(ctx, ownerID, payload); err != nil {
				uc.logger.Warn("failed to cache brochure text", zap.Error(err))
			}
		}
	}
	return text, nil
}

// GenerateText produces the brochure blocks from already-loaded
// records. The second return value reports whether the service actually
// generated the text (placeholders and fallbacks are not cacheable).
func (uc *UseCase) GenerateText(
	ctx context.Context,
	data *personal.PersonalData,
	projects []*project.Project,
	skills []*skill.Skill,
	testimonials []*testimonial.Testimonial,
) (*BrochureText, bool) {
	if data == nil || (len(projects) == 0 && len(skills) == 0 && len(testimonials) == 0) {
		out := placeholderText
		return &out, false
	}

	prompt := buildBrochurePrompt(data, projects, skills, testimonials)

	raw, err := uc.llm.GenerateCompletion(ctx, prompt)
	if err != nil {
		if errors.Is(err, service.ErrServiceOverloaded) {
			uc.logger.Warn("generation service overloaded", zap.Error(err))
			out := overloadedText
			return &out, false
		}
		uc.logger.Error("brochure generation failed", err, zap.String("owner_id", data.OwnerID.String()))
		out := failureText
		return &out, false
	}

	var text BrochureText
	if err := json.Unmarshal(extractJSON(raw), &text); err != nil {
		uc.logger.Warn("generation service returned unparseable output", zap.Error(err))
		out := failureText
		return &out, false
	}
	if text.Introduction == "" && text.ProjectHighlights == "" && text.Conclusion == "" {
		out := failureText
		return &out, false
	}
	return &text, true
}

// Reformulate rewrites originalText for the named field, or suggests a
// fresh text when none is supplied. Failures come back as a static
// apology, never as an error.
func (uc *UseCase) Reformulate(ctx context.Context, originalText, fieldLabel string) string {
	ctx, span := tracer.Start(ctx, "Reformulate")
	defer span.End()

	prompt := buildReformulatePrompt(originalText, fieldLabel)

	raw, err := uc.llm.GenerateCompletion(ctx, prompt)
	if err != nil {
		uc.logger.Warn("reformulation failed", zap.String("field", fieldLabel), zap.Error(err))
		return reformulateApology
	}
	out := strings.TrimSpace(raw)
	if out == "" {
		return reformulateApology
	}
	return out
}

func buildBrochurePrompt(
	data *personal.PersonalData,
	projects []*project.Project,
	skills []*skill.Skill,
	testimonials []*testimonial.Testimonial,
) string {
	var b strings.Builder
	b.WriteString("Vous êtes un expert en rédaction publicitaire spécialisé dans les portfolios professionnels d'architectes.\n")
	b.WriteString("Générez une introduction captivante, un résumé des points forts des projets et une conclusion percutante pour une brochure de portfolio.\n")
	b.WriteString("Le ton doit être professionnel, confiant et inspirant. L'intégralité du texte doit être en français.\n\n")

	b.WriteString("Données personnelles:\n")
	fmt.Fprintf(&b, "Nom: %s\nTitre: %s\nBio: %s\n", data.Name, data.Title, data.Bio)
	if data.WhoAmI != "" {
		fmt.Fprintf(&b, "Qui suis-je: %s\n", data.WhoAmI)
	}
	if data.AboutMe != "" {
		fmt.Fprintf(&b, "À propos de moi: %s\n", data.AboutMe)
	}

	b.WriteString("\nAperçu des projets:\n")
	if len(projects) == 0 {
		b.WriteString("Aucun projet spécifique n'est listé pour le moment.\n")
	} else {
		fmt.Fprintf(&b, "L'architecte a réalisé %d projet(s).\n", len(projects))
		for _, p := range projects {
			fmt.Fprintf(&b, "- Titre: %s\n  Description: %s\n", p.Title, p.Description)
			if len(p.Category) > 0 {
				fmt.Fprintf(&b, "  Catégories: %s\n", strings.Join(p.Category, ", "))
			}
			if len(p.Technologies) > 0 {
				fmt.Fprintf(&b, "  Technologies: %s\n", strings.Join(p.Technologies, ", "))
			}
		}
	}

	b.WriteString("\nAperçu des compétences:\n")
	if len(skills) == 0 {
		b.WriteString("Aucune compétence spécifique n'est listée pour le moment.\n")
	} else {
		for _, s := range skills {
			fmt.Fprintf(&b, "- %s (Catégorie: %s, Niveau: %d%%)\n", s.Name, s.Category, s.Level)
		}
	}

	b.WriteString("\nAperçu des témoignages:\n")
	if len(testimonials) == 0 {
		b.WriteString("Aucun témoignage disponible pour le moment.\n")
	} else {
		for _, t := range testimonials {
			fmt.Fprintf(&b, "- \"%s\" - %s, %s\n", t.Text, t.Name, t.Company)
		}
	}

	b.WriteString("\nRépondez uniquement avec un objet JSON de la forme ")
	b.WriteString(`{"introduction": "...", "projectHighlights": "...", "conclusion": "..."}`)
	b.WriteString(" dont tout le contenu est rédigé en français.")
	return b.String()
}

func buildReformulatePrompt(originalText, fieldLabel string) string {
	var b strings.Builder
	b.WriteString("Vous êtes un assistant expert en rédaction pour les portfolios d'architectes.\n")
	b.WriteString("L'intégralité du texte généré doit être en français.\n\n")
	fmt.Fprintf(&b, "Le champ concerné est : \"%s\".\n\n", fieldLabel)
	if originalText != "" {
		fmt.Fprintf(&b, "Voici le texte original fourni par l'utilisateur :\n\"\"\"\n%s\n\"\"\"\n", originalText)
		b.WriteString("Reformulez, améliorez ou enrichissez ce texte pour le rendre plus professionnel et engageant.\n")
		b.WriteString("Si le texte original est très court, développez-le en une phrase ou un court paragraphe pertinent.\n")
	} else {
		b.WriteString("L'utilisateur n'a pas fourni de texte original pour ce champ.\n")
		b.WriteString("Suggérez un texte pertinent, concis et professionnel mettant en valeur l'expertise et la vision d'un architecte.\n")
	}
	b.WriteString("\nNe retournez que le texte reformulé ou suggéré, sans commentaire.")
	return b.String()
}

// extractJSON tolerates models that wrap their JSON in markdown fences
// or prose.
func extractJSON(raw string) []byte {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return []byte(raw)
	}
	return []byte(raw[start : end+1])
}
