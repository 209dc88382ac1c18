package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"meditrack_pro/internal/analytics"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidPatientID     = errors.New("invalid patient id")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrInvalidPatientStatus = errors.New("invalid patient status")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

const (
	analysisUnavailableText = "Sem análise disponível."
	analysisErrorText       = "Erro ao gerar análise."
	shareNoSummaryText      = "Análise da IA não solicitada para este compartilhamento."

	patientAnalysisInstruction = "Você é um assistente médico sênior. Forneça um resumo executivo de 2 frases sobre o perfil do paciente, destacando pontos de atenção ou oportunidades de cuidado preventivo. Seja conciso e profissional em Português Brasileiro."
	patientAnalysisTemperature = 0.5

	patientAnalysisCachePrefix = "patient-analysis:"
)

var followUpSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"action":      map[string]any{"type": "STRING"},
			"priority":    map[string]any{"type": "STRING", "enum": []string{"Alta", "Média", "Baixa"}},
			"description": map[string]any{"type": "STRING"},
		},
		"required": []string{"action", "priority", "description"},
	},
}

// PatientFilter narrows the patient list. A zero Status matches any status.
type PatientFilter struct {
	Search string
	Status entities.PatientStatus
}

// PatientAnalysis is the short AI clinical summary of a patient.
type PatientAnalysis struct {
	PatientID string
	Text      string
	Fallback  bool
	Cached    bool
}

type IPatientUseCase interface {
	List(ctx context.Context, filter PatientFilter) ([]entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	Analyze(ctx context.Context, id string) (PatientAnalysis, error)
	SuggestFollowUp(ctx context.Context, id string) ([]entities.FollowUpAction, error)
	ShareText(ctx context.Context, id string) (string, error)
	Export(ctx context.Context, filter PatientFilter, format entities.ExportFormat) (entities.File, error)
}

type PatientUseCase struct {
	patients  interfaces.IPatientRepository
	contracts interfaces.IContractRepository
	generator interfaces.ITextGenerator
	cache     interfaces.ISummaryCache
	exporters map[entities.ExportFormat]interfaces.IPatientExporter
	settings  ClinicSettings
	now       func() time.Time
	log       *zap.Logger
}

var _ IPatientUseCase = (*PatientUseCase)(nil)

// NewPatientUseCase accepts a nil cache; analyses are then regenerated on every call.
func NewPatientUseCase(
	patients interfaces.IPatientRepository,
	contracts interfaces.IContractRepository,
	generator interfaces.ITextGenerator,
	cache interfaces.ISummaryCache,
	exporters []interfaces.IPatientExporter,
	settings ClinicSettings,
	log *zap.Logger,
) *PatientUseCase {
	byFormat := make(map[entities.ExportFormat]interfaces.IPatientExporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &PatientUseCase{
		patients:  patients,
		contracts: contracts,
		generator: generator,
		cache:     cache,
		exporters: byFormat,
		settings:  settings.withDefaults(),
		now:       time.Now,
		log:       logger.Component(log, "patient.usecase"),
	}
}

func (u *PatientUseCase) List(ctx context.Context, filter PatientFilter) ([]entities.Patient, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidPatientStatus
	}
	patients, err := u.patients.List(ctx)
	if err != nil {
		u.log.Error("list patients failed", zap.Error(err))
		return nil, err
	}
	return analytics.FilterPatients(patients, filter.Search, filter.Status), nil
}

// Export writes the patients matching filter, in the same order as List, with
// their convênio names resolved. A failed contract lookup still exports the
// patients, with the convênio left unresolved.
func (u *PatientUseCase) Export(ctx context.Context, filter PatientFilter, format entities.ExportFormat) (entities.File, error) {
	exporter, ok := u.exporters[format]
	if !ok {
		return entities.File{}, ErrUnsupportedExportFormat
	}
	patients, err := u.List(ctx, filter)
	if err != nil {
		return entities.File{}, err
	}

	names := u.contractNames(ctx)
	rows := make([]entities.PatientSheetRow, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, entities.PatientSheetRow{Patient: p, ContractName: names[p.ContractID]})
	}
	content, err := exporter.Write(rows)
	if err != nil {
		u.log.Error("patient export failed", zap.String("format", string(format)), zap.Error(err))
		return entities.File{}, err
	}
	u.log.Info("patients exported", zap.String("format", string(format)), zap.Int("patients", len(rows)))

	return entities.File{
		Name:        entities.PatientExportFileName(format, u.now()),
		ContentType: exporter.ContentType(),
		Content:     content,
	}, nil
}

func (u *PatientUseCase) contractNames(ctx context.Context) map[string]string {
	names := map[string]string{}
	if u.contracts == nil {
		return names
	}
	contracts, err := u.contracts.List(ctx)
	if err != nil {
		u.log.Warn("list contracts failed", zap.Error(err))
		return names
	}
	for _, c := range contracts {
		names[c.ID] = c.Name
	}
	return names
}

func (u *PatientUseCase) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Patient{}, ErrInvalidPatientID
	}
	p, err := u.patients.GetByID(ctx, id)
	if err != nil {
		u.log.Error("get patient failed", zap.String("patient_id", id), zap.Error(err))
		return entities.Patient{}, err
	}
	if p.ID == "" {
		return entities.Patient{}, ErrPatientNotFound
	}
	return p, nil
}

// contractOf returns the zero Contract when the lookup fails; the caller
// prints a placeholder instead.
func (u *PatientUseCase) contractOf(ctx context.Context, p entities.Patient) entities.Contract {
	if u.contracts == nil || p.ContractID == "" {
		return entities.Contract{}
	}
	c, err := u.contracts.GetByID(ctx, p.ContractID)
	if err != nil {
		u.log.Warn("get contract failed", zap.String("contract_id", p.ContractID), zap.Error(err))
		return entities.Contract{}
	}
	return c
}

func (u *PatientUseCase) Analyze(ctx context.Context, id string) (PatientAnalysis, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return PatientAnalysis{}, err
	}
	key := patientAnalysisCachePrefix + p.ID

	if u.cache != nil {
		cached, found, err := u.cache.Get(ctx, key)
		if err != nil {
			u.log.Warn("summary cache get failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return PatientAnalysis{PatientID: p.ID, Text: cached, Cached: true}, nil
		}
	}

	if u.generator == nil {
		u.log.Warn("text generator not configured")
		return PatientAnalysis{PatientID: p.ID, Text: analysisErrorText, Fallback: true}, nil
	}

	temperature := patientAnalysisTemperature
	resp, err := u.generator.Generate(ctx, entities.TextGenerationRequest{
		Prompt:            "Gere um resumo clínico rápido para o paciente: " + patientContext(p, u.contractOf(ctx, p)),
		SystemInstruction: patientAnalysisInstruction,
		Temperature:       &temperature,
		ResponseFormat:    entities.ResponseFormatText,
	})
	if err != nil {
		u.log.Warn("patient analysis generation failed", zap.String("patient_id", p.ID), zap.Error(err))
		return PatientAnalysis{PatientID: p.ID, Text: analysisErrorText, Fallback: true}, nil
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return PatientAnalysis{PatientID: p.ID, Text: analysisUnavailableText, Fallback: true}, nil
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, key, text, u.settings.SummaryTTL); err != nil {
			u.log.Warn("summary cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return PatientAnalysis{PatientID: p.ID, Text: text}, nil
}

func patientContext(p entities.Patient, c entities.Contract) string {
	contractName := c.Name
	if contractName == "" {
		contractName = "Não informado"
	}
	observations := p.Observations
	if strings.TrimSpace(observations) == "" {
		observations = "Nenhuma"
	}
	history := "Sem histórico"
	if len(p.VisitHistory) > 0 {
		entries := make([]string, 0, len(p.VisitHistory))
		for _, h := range p.VisitHistory {
			entries = append(entries, fmt.Sprintf("%s: %s (%s)", h.Date, h.Procedure, h.Notes))
		}
		history = strings.Join(entries, "; ")
	}

	return fmt.Sprintf("\nPaciente: %s\nConvênio: %s\nObservações: %s\nHistórico: %s\n",
		p.Name, contractName, observations, history)
}

// SuggestFollowUp asks for 3 follow-up actions. Unlike the summaries it has no
// fallback text: generator failures and unparseable answers return
// ErrAssistantUnavailable. Items with an unknown priority are dropped.
func (u *PatientUseCase) SuggestFollowUp(ctx context.Context, id string) ([]entities.FollowUpAction, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.generator == nil {
		return nil, fmt.Errorf("%w: text generator not configured", ErrAssistantUnavailable)
	}

	lastVisit := p.LastVisit
	if lastVisit == "" {
		lastVisit = "N/A"
	}
	resp, err := u.generator.Generate(ctx, entities.TextGenerationRequest{
		Prompt: fmt.Sprintf("Sugira 3 ações de acompanhamento (follow-up) para o paciente %s que possui o plano %s. Última visita foi em %s.",
			p.Name, p.Plan, lastVisit),
		ResponseFormat: entities.ResponseFormatJSONSchema,
		Schema:         followUpSchema,
	})
	if err != nil {
		u.log.Warn("follow-up generation failed", zap.String("patient_id", p.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	var raw []struct {
		Action      string `json:"action"`
		Priority    string `json:"priority"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text)), &raw); err != nil {
		u.log.Warn("follow-up response is not valid json", zap.String("patient_id", p.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: malformed response: %v", ErrAssistantUnavailable, err)
	}

	actions := make([]entities.FollowUpAction, 0, len(raw))
	for _, item := range raw {
		priority, ok := entities.ParseFollowUpPriority(item.Priority)
		if !ok || strings.TrimSpace(item.Action) == "" {
			u.log.Debug("dropping follow-up item", zap.String("priority", item.Priority))
			continue
		}
		actions = append(actions, entities.FollowUpAction{
			Action:      strings.TrimSpace(item.Action),
			Priority:    priority,
			Description: strings.TrimSpace(item.Description),
		})
	}
	return actions, nil
}

// ShareText builds the "Ficha Resumida" sent over messaging apps. It includes
// the AI summary only when one is already cached; it never calls the generator.
func (u *PatientUseCase) ShareText(ctx context.Context, id string) (string, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	summary := ""
	if u.cache != nil {
		cached, found, err := u.cache.Get(ctx, patientAnalysisCachePrefix+p.ID)
		if err != nil {
			u.log.Warn("summary cache get failed", zap.String("patient_id", p.ID), zap.Error(err))
		} else if found {
			summary = cached
		}
	}
	return shareText(p, u.contractOf(ctx, p), summary), nil
}

func shareText(p entities.Patient, c entities.Contract, summary string) string {
	contractName := c.Name
	if contractName == "" {
		contractName = "Particular"
	}
	lastVisit := p.LastVisit
	if lastVisit == "" {
		lastVisit = "N/A"
	}
	if strings.TrimSpace(summary) == "" {
		summary = shareNoSummaryText
	}

	var b strings.Builder
	b.WriteString("📄 *Ficha Resumida - MediTrack Pro*\n")
	b.WriteString("----------------------------------\n")
	fmt.Fprintf(&b, "👤 *Paciente:* %s\n", p.Name)
	fmt.Fprintf(&b, "🆔 *ID:* %s\n", p.ID)
	fmt.Fprintf(&b, "💳 *Convênio:* %s\n", contractName)
	fmt.Fprintf(&b, "📑 *Plano:* %s\n", p.Plan)
	fmt.Fprintf(&b, "📞 *Contato:* %s\n", p.Phone)
	fmt.Fprintf(&b, "📅 *Última Visita:* %s\n", lastVisit)
	b.WriteString("\n🤖 *Resumo Clínico (IA):*\n")
	b.WriteString(summary)
	b.WriteString("\n\n----------------------------------\n")
	b.WriteString("_Enviado via MediTrack Pro_")
	return b.String()
}
