package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/shared/telemetry"
)

// AudioSink stores generated speech and returns a caller-facing handle,
// backed by the artifact vault.
type AudioSink interface {
	Store(ctx context.Context, data []byte, role, company, fileType string) (string, error)
}

// StartResult is the interview kickoff payload. Audio and video are best
// effort; either may be empty when its collaborator is unavailable.
type StartResult struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	AudioURL string `json:"audio_url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
}

// Service runs interview simulations.
type Service struct {
	llm    llm.Client
	tts    *TTSClient
	avatar *AvatarClient
	audio  AudioSink
}

func NewService(client llm.Client, tts *TTSClient, avatar *AvatarClient, audio AudioSink) *Service {
	return &Service{llm: client, tts: tts, avatar: avatar, audio: audio}
}

// Start picks a question for the round, asks the model for a reference
// answer, and attaches speech and avatar video when those clients are
// configured.
func (s *Service) Start(ctx context.Context, resume, jd, round string) (StartResult, error) {
	if strings.TrimSpace(round) == "" {
		round = "HR"
	}
	question := PresetQuestion(round)

	answer := ""
	if s.llm != nil {
		prompt := fmt.Sprintf(
			"As an interviewer for the %s round, here's the question: %s. "+
				"Given the candidate's resume and the job description below, provide the best model answer.\n\n"+
				"Resume:\n%s\n\nJob Description:\n%s",
			round, question, resume, jd)
		out, err := s.llm.Complete(ctx, prompt)
		if err != nil {
			if errors.Is(err, llm.ErrRateLimited) {
				return StartResult{}, err
			}
			telemetry.Warn("interview.answer.failed", map[string]any{"err": err.Error()})
		} else {
			answer = strings.TrimSpace(out)
		}
	}

	result := StartResult{Question: question, Answer: answer}
	if answer == "" {
		return result, nil
	}

	if s.tts.Configured() && s.audio != nil {
		if audio, err := s.tts.Speak(ctx, answer); err != nil {
			telemetry.Warn("interview.tts.failed", map[string]any{"err": err.Error()})
		} else if name, err := s.audio.Store(ctx, audio, round, "interview", "audio"); err != nil {
			telemetry.Warn("interview.audio.store.failed", map[string]any{"err": err.Error()})
		} else {
			result.AudioURL = "/api/v1/download/" + name
		}
	}

	if s.avatar.Configured() {
		if videoURL, err := s.avatar.GenerateVideo(ctx, answer); err != nil {
			telemetry.Warn("interview.avatar.failed", map[string]any{"err": err.Error()})
		} else {
			result.VideoURL = videoURL
		}
	}

	return result, nil
}

// Evaluate returns coaching feedback for an answer against the JD.
func (s *Service) Evaluate(ctx context.Context, answer, jd string) (string, error) {
	answer = strings.TrimSpace(answer)
	jd = strings.TrimSpace(jd)
	if answer == "" || jd == "" {
		return "", errors.New("answer and job description are required")
	}
	if s.llm == nil {
		return "", errors.New("no LLM configured")
	}

	out, err := s.llm.Complete(ctx, llm.AnswerFeedbackPrompt(answer, jd))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
