package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/logger"

	"go.uber.org/zap"
)

var ErrEmptyChatMessage = errors.New("empty chat message")

const (
	chatNoAnswerText     = "Desculpe, não consegui processar sua solicitação."
	chatTechnicalErrText = "Houve um erro técnico. Verifique sua conexão ou chave de API."
	chatInstructionFmt   = "Você é um assistente de IA médico para a plataforma MediTrack Pro. Ajude a gerenciar a clínica e responda dúvidas médicas gerais com base no seguinte contexto da clínica: %s."
)

type IAssistantUseCase interface {
	Chat(ctx context.Context, message string) (entities.ChatReply, error)
}

type AssistantUseCase struct {
	patients  interfaces.IPatientRepository
	generator interfaces.ITextGenerator
	log       *zap.Logger
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(patients interfaces.IPatientRepository, generator interfaces.ITextGenerator, log *zap.Logger) *AssistantUseCase {
	return &AssistantUseCase{patients: patients, generator: generator, log: logger.Component(log, "assistant.usecase")}
}

// Chat answers with web search grounding. Only an empty message is an error;
// every collaborator failure becomes a fallback reply.
func (u *AssistantUseCase) Chat(ctx context.Context, message string) (entities.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.ChatReply{}, ErrEmptyChatMessage
	}

	clinicContext := "Nenhum contexto específico fornecido"
	patients, err := u.patients.List(ctx)
	if err != nil {
		u.log.Warn("list patients failed, chatting without clinic context", zap.Error(err))
	} else {
		clinicContext = ClinicContext(patients)
	}

	if u.generator == nil {
		return entities.ChatReply{Text: chatTechnicalErrText, Fallback: true}, nil
	}
	resp, err := u.generator.Generate(ctx, entities.TextGenerationRequest{
		Prompt:            message,
		SystemInstruction: fmt.Sprintf(chatInstructionFmt, clinicContext),
		ResponseFormat:    entities.ResponseFormatText,
		WithSearch:        true,
	})
	if err != nil {
		u.log.Warn("chat generation failed", zap.Error(err))
		return entities.ChatReply{Text: chatTechnicalErrText, Fallback: true}, nil
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return entities.ChatReply{Text: chatNoAnswerText, Sources: resp.Sources, Fallback: true}, nil
	}
	return entities.ChatReply{Text: text, Sources: resp.Sources}, nil
}

// ClinicContext summarizes the patient base for the assistant: the patient
// count and the distinct plans in first-seen order.
func ClinicContext(patients []entities.Patient) string {
	seen := make(map[string]bool, len(patients))
	plans := make([]string, 0)
	for _, p := range patients {
		if seen[p.Plan] {
			continue
		}
		seen[p.Plan] = true
		plans = append(plans, p.Plan)
	}
	return fmt.Sprintf("A clínica possui %d pacientes. Alguns convênios comuns são %s.", len(patients), strings.Join(plans, ", "))
}
