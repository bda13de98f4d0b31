package lead

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/educatesobreia/backend/core"
)

var (
	// errors
	ErrNotFound    = errors.New("lead not found")
	ErrEmailExists = errors.New("this email is already registered")
)

const (
	// genericGreeting replaces the AI welcome whenever the inference
	// service is unavailable; registration itself is unaffected.
	genericGreeting = "¡Bienvenido a EducateSobreIA! Revisa tu correo: tus plantillas están en camino."

	welcomePersona = "Eres 'Nexus', el núcleo de inteligencia de EducateSobreIA. " +
		"Tu tono es motivador, futurista y altamente técnico pero comprensible."
)

type (
	Repository interface {
		CreateLead(ctx context.Context, ld Lead) (Lead, error)
		GetLeadByEmail(ctx context.Context, email string) (Lead, error)
		QueryAllLeads(ctx context.Context) ([]Lead, error)
	}

	Service struct {
		repo      Repository
		mailSvc   core.EmailService
		inference core.InferenceClient
		conf      *core.Config
		logger    core.Logger
	}
)

func NewService(repo Repository, mailSvc core.EmailService, inference core.InferenceClient, conf *core.Config, logger core.Logger) *Service {
	return &Service{
		repo:      repo,
		mailSvc:   mailSvc,
		inference: inference,
		conf:      conf,
		logger:    logger,
	}
}

// Register validates and persists a new Lead, then decorates the result
// with a personalized welcome. Exactly one durable write happens per
// successful call; none on validation failure or duplicate rejection.
// A duplicate email is reported as ErrEmailExists, never as a generic failure.
func (svc *Service) Register(ctx context.Context, nl NewLead) (Registration, error) {
	if err := nl.Validate(); err != nil {
		return Registration{}, err
	}

	ld := Lead{
		FullName:  nl.Name,
		Email:     nl.Email,
		Keyword:   nl.Keyword,
		CreatedAt: time.Now().UTC(),
	}
	ld, err := svc.repo.CreateLead(ctx, ld)
	if err != nil {
		if errors.Cause(err) == ErrEmailExists {
			return Registration{}, ErrEmailExists
		}
		return Registration{}, errors.Wrap(err, "registering lead")
	}

	greeting := svc.welcomeGreeting(ctx, ld)
	svc.sendTemplatesEmail(ld, greeting)

	return Registration{Lead: ld, Greeting: greeting}, nil
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Lead, error) {
	return svc.repo.GetLeadByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) QueryAll(ctx context.Context) ([]Lead, error) {
	return svc.repo.QueryAllLeads(ctx)
}

// welcomeGreeting asks the inference service for a short personalized
// welcome. Failure is non-fatal: the generic greeting is substituted.
func (svc *Service) welcomeGreeting(ctx context.Context, ld Lead) string {
	req := core.GenerationRequest{
		Prompt: fmt.Sprintf(
			"Escribe un mensaje de bienvenida corto (máximo 2 frases) para %s, "+
				"que acaba de unirse a la comunidad y quiere aprender sobre: %s.",
			ld.FullName, ld.Keyword),
		SystemInstruction: welcomePersona,
		Temperature:       svc.conf.Gemini.Temperature,
	}

	greeting, err := svc.inference.GenerateText(ctx, req)
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("generating welcome greeting: %v", err), err, ld)
		return genericGreeting
	}
	if greeting == "" {
		return genericGreeting
	}
	return greeting
}

// sendTemplatesEmail delivers the promised starter templates.
// EmailService sends asynchronously; delivery failure never fails registration.
func (svc *Service) sendTemplatesEmail(ld Lead, greeting string) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: ld.FullName, Address: ld.Email}},
		Subject:      "Tus plantillas de IA",
		TemplateName: "welcome",
		TemplateData: struct {
			Name            string
			Keyword         string
			Greeting        string
			FrontendBaseURL string
		}{
			Name:            ld.FullName,
			Keyword:         ld.Keyword,
			Greeting:        greeting,
			FrontendBaseURL: svc.conf.FrontendBaseURL,
		},
	})
}
