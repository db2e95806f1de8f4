package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/ingest"
	"github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// transcriptPollInterval is how often a submitted transcript is checked
const transcriptPollInterval = 5 * time.Second

const reshapeSystemPrompt = `You convert a raw meeting transcript into plain meeting notes.
Use exactly this layout, omitting lines you cannot fill:

<title>
Date: <Month D, YYYY>
Time: <H:MM AM - H:MM PM>
Location: <where>
Attendees: <comma separated names>

Agenda:
- ...

Discussion:
<topic heading>
- ...

Action Items:
- <owner> to <task>
- ...

Decisions:
- Decision: ...

Blockers:
- ...

Keep every name, date, task and decision from the transcript.
Do not invent content. Respond with the notes only.`

// Transcriber turns an audio recording into an ingested meeting via
// AssemblyAI and an optional reshaping model pass
type Transcriber struct {
	client   *aai.Client
	groq     *ai.GroqClient
	ingester ingest.Service
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewTranscriber constructs the audio transcription handler
func NewTranscriber(
	client *aai.Client,
	groq *ai.GroqClient,
	ingester ingest.Service,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Transcriber {
	return &Transcriber{
		client:   client,
		groq:     groq,
		ingester: ingester,
		metrics:  m,
		logger:   logger,
	}
}

// Run transcribes the payload's audio URL, reshapes the transcript into
// notes and pushes them through the ingestion pipeline
func (t *Transcriber) Run(ctx context.Context, payload entities.JobPayload) (entities.JobResult, error) {
	if t.client == nil {
		return entities.JobResult{}, usecaseErrors.ErrTranscriberNotConfig
	}
	if payload.AudioURL == "" {
		return entities.JobResult{}, usecaseErrors.ErrMissingAudioURL
	}

	transcriptID, err := t.submit(ctx, payload.AudioURL)
	if err != nil {
		return entities.JobResult{}, err
	}

	if t.logger != nil {
		t.logger.Info("🎙️ Transcription submitted",
			zap.String("transcript_id", transcriptID),
			zap.String("audio_url", payload.AudioURL),
		)
	}

	text, err := t.awaitTranscript(ctx, transcriptID)
	if err != nil {
		return entities.JobResult{}, err
	}

	notes := t.reshape(ctx, text)

	meetingType := payload.MeetingType
	if meetingType == "" {
		meetingType = "meeting"
	}
	sourcePath := fmt.Sprintf("transcripts/%s/%s_%s.txt",
		transcriptID, meetingType, time.Now().Format("2006_01_02"))

	res, err := t.ingester.IngestText(ctx, ingest.Input{
		Content:      notes,
		SourcePath:   sourcePath,
		Origin:       entities.DocumentOriginAudio,
		AudioURL:     payload.AudioURL,
		TranscriptID: transcriptID,
	})
	if err != nil {
		return entities.JobResult{}, fmt.Errorf("failed to ingest transcript: %w", err)
	}

	result := entities.JobResult{TranscriptID: transcriptID}
	if res.Meeting != nil {
		id := res.Meeting.ID
		result.MeetingID = &id
	}

	if t.logger != nil {
		t.logger.Info("✅ Audio ingested",
			zap.String("transcript_id", transcriptID),
			zap.String("source_path", sourcePath),
		)
	}
	return result, nil
}

// submit sends the audio URL to AssemblyAI, retrying transient failures
func (t *Transcriber) submit(ctx context.Context, audioURL string) (string, error) {
	var transcript aai.Transcript

	operation := func() error {
		var err error
		transcript, err = t.client.Transcripts.SubmitFromURL(ctx, audioURL, &aai.TranscriptOptionalParams{
			SpeakerLabels: aai.Bool(true),
		})
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return "", fmt.Errorf("failed to submit transcription: %w", err)
	}
	if transcript.ID == nil {
		return "", fmt.Errorf("%w: no transcript id returned", usecaseErrors.ErrTranscriptionFailed)
	}
	return *transcript.ID, nil
}

// awaitTranscript polls until the transcript completes or errors. Poll
// failures are transient and resolve on the next tick; only the job
// context deadline stops the wait.
func (t *Transcriber) awaitTranscript(ctx context.Context, transcriptID string) (string, error) {
	ticker := time.NewTicker(transcriptPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("transcription timed out: %w", ctx.Err())
		case <-ticker.C:
			transcript, err := t.client.Transcripts.Get(ctx, transcriptID)
			if err != nil {
				if t.logger != nil {
					t.logger.Warn("⚠️ Failed to poll transcript",
						zap.String("transcript_id", transcriptID),
						zap.Error(err),
					)
				}
				continue
			}

			switch transcript.Status {
			case aai.TranscriptStatusCompleted:
				var text string
				if transcript.Text != nil {
					text = strings.TrimSpace(*transcript.Text)
				}
				if text == "" {
					return "", fmt.Errorf("%w: empty transcript", usecaseErrors.ErrTranscriptionFailed)
				}
				return text, nil

			case aai.TranscriptStatusError:
				msg := "transcription failed"
				if transcript.Error != nil {
					msg = *transcript.Error
				}
				return "", fmt.Errorf("%w: %s", usecaseErrors.ErrTranscriptionFailed, msg)

			case aai.TranscriptStatusQueued, aai.TranscriptStatusProcessing:
				if t.logger != nil {
					t.logger.Info("⏳ Transcript still processing",
						zap.String("transcript_id", transcriptID),
						zap.String("status", string(transcript.Status)),
					)
				}
			}
		}
	}
}

// reshape asks the model for canonical notes; on any failure the raw
// transcript is wrapped so its content still survives extraction
func (t *Transcriber) reshape(ctx context.Context, transcript string) string {
	if t.groq == nil || !t.groq.IsConfigured() {
		return wrapTranscript(transcript)
	}

	start := time.Now()
	notes, err := t.groq.Complete(ctx, reshapeSystemPrompt, transcript, 0.2, 2000)
	if t.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		t.metrics.RecordLLMRequest("reshape", status, time.Since(start).Seconds())
	}
	if err != nil || strings.TrimSpace(notes) == "" {
		if t.logger != nil {
			t.logger.Warn("⚠️ Transcript reshape failed, ingesting raw transcript", zap.Error(err))
		}
		return wrapTranscript(transcript)
	}
	return strings.TrimSpace(notes)
}

// wrapTranscript puts a raw transcript into the notes layout as one
// discussion topic, one bullet per utterance
func wrapTranscript(transcript string) string {
	var b strings.Builder
	b.WriteString("Transcribed Meeting\n\n")
	b.WriteString("Discussion:\n")
	b.WriteString("Transcript\n")
	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("- " + line + "\n")
	}
	return b.String()
}
